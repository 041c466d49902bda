package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/raster"
	"github.com/matzehuels/iconforge/pkg/report"
)

// verifyCommand creates the verify command, which checks that every icon of
// the size table exists with the expected dimensions.
func (c *CLI) verifyCommand() *cobra.Command {
	var configPath, dir string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that produced icons exist with the expected sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Resolve(configPath, ".")
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.OutputDir
			}
			return c.verifyJobs(raster.Jobs(cfg.Source, dir, raster.DefaultTable))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output root directory (default .)")
	return cmd
}

// verifyJobs prints one line per destination and fails if any check failed.
func (c *CLI) verifyJobs(jobs []raster.Job) error {
	failed := 0
	for _, chk := range report.Verify(jobs) {
		if chk.OK() {
			c.ui.success("%s is %dx%d", chk.Job.Destination, chk.Width, chk.Height)
			continue
		}
		failed++
		c.ui.failure("%s", errors.UserMessage(chk.Err))
	}
	if failed > 0 {
		return errors.New(errors.ErrCodeDimensionMismatch, "%d/%d icons failed verification", failed, len(jobs))
	}
	return nil
}
