package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/observability"
	"github.com/matzehuels/iconforge/pkg/raster"
	"github.com/matzehuels/iconforge/pkg/raster/backend"
	"github.com/matzehuels/iconforge/pkg/report"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	config string // explicit config file
	dir    string // output root, overrides config
	report string // JSON report path
	verify bool   // check produced dimensions afterwards
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [source.svg]",
		Short: "Rasterize an SVG into the PNG icon set",
		Long: `Convert rasterizes the source SVG into every icon of the fixed size table:

  icons/Icon-192.png            192x192
  icons/Icon-512.png            512x512
  icons/Icon-maskable-192.png   192x192
  icons/Icon-maskable-512.png   512x512
  favicon.png                   32x32

Each icon is tried with rsvg-convert, ImageMagick, Inkscape and the built-in
renderer, in that order, until one succeeds. The command exits non-zero unless
every icon was produced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return c.runConvert(cmd.Context(), source, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "output root directory (default .)")
	cmd.Flags().StringVar(&opts.report, "report", "", "write a JSON report of the run to this path")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check produced icon dimensions after converting")

	return cmd
}

// runConvert resolves configuration, runs the batch and turns the result into
// an error when not every icon was produced.
func (c *CLI) runConvert(ctx context.Context, source string, opts convertOpts) error {
	logger := loggerFromContext(ctx)

	cfg, used, err := config.Resolve(opts.config, ".")
	if err != nil {
		return err
	}
	if used != "" {
		logger.Debug("loaded config", "path", used)
	}
	if source == "" {
		source = cfg.Source
	}
	dir := cfg.OutputDir
	if opts.dir != "" {
		dir = opts.dir
	}

	if err := raster.ValidateTable(raster.DefaultTable); err != nil {
		return err
	}
	if _, err := os.Stat(source); err != nil {
		c.ui.warning("Source %s not found; every backend will fail", source)
	}

	jobs := raster.Jobs(source, dir, raster.DefaultTable)
	if err := prepareOutputs(jobs); err != nil {
		return err
	}

	backends := backend.Defaults(cfg.BackendTools())
	var spinnerOut io.Writer
	if c.spinnerEnabled() {
		spinnerOut = c.stderr
	}
	hooks := newConsoleHooks(ctx, c.ui, backend.InstallHints(backends), spinnerOut)

	orch := raster.New(backends,
		raster.WithLogger(logger),
		raster.WithHooks(observability.Multi(hooks, observability.Conversion())))

	logger.Debug("converting", "source", source, "dir", dir, "jobs", len(jobs))
	result := orch.RunBatch(ctx, jobs)

	if opts.report != "" {
		if err := report.Write(opts.report, report.New(source, result)); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write report")
		}
		c.ui.file(opts.report)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.verify {
		if err := c.verifyJobs(succeededJobs(result)); err != nil {
			return err
		}
	}

	if !result.OK() {
		var failed []string
		for _, jr := range result.Failed() {
			failed = append(failed, jr.Job.Destination)
		}
		return errors.New(errors.ErrCodeIncomplete, "%d/%d icons converted, failed: %s",
			result.Succeeded, result.Attempted, strings.Join(failed, ", "))
	}
	return nil
}

// prepareOutputs creates the parent directory of every destination.
func prepareOutputs(jobs []raster.Job) error {
	for _, job := range jobs {
		dir := filepath.Dir(job.Destination)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	return nil
}

func succeededJobs(result raster.BatchResult) []raster.Job {
	var jobs []raster.Job
	for _, jr := range result.Jobs {
		if jr.OK() {
			jobs = append(jobs, jr.Job)
		}
	}
	return jobs
}
