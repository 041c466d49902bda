package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/raster"
	"github.com/matzehuels/iconforge/pkg/raster/backend"
)

// backendRow describes one backend for display.
type backendRow struct {
	name      string
	available bool
	location  string
	hint      string
}

// backendsCommand creates the backends command, which lists the conversion
// chain in priority order and whether each tool can be found.
func (c *CLI) backendsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "backends",
		Short: "List conversion backends in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Resolve(configPath, ".")
			if err != nil {
				return err
			}
			rows := describeBackends(backend.Defaults(cfg.BackendTools()))
			c.ui.line(StyleTitle.Render("Conversion backends, in priority order"))
			c.ui.line(renderBackends(rows))

			for _, r := range rows {
				if r.available && r.name != backend.NameNative {
					return nil
				}
			}
			c.ui.warning("No external converter found; only the built-in renderer will be used")
			for _, r := range rows {
				if r.hint != "" {
					c.ui.detail("- %s", r.hint)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	return cmd
}

func describeBackends(backends []raster.Backend) []backendRow {
	rows := make([]backendRow, 0, len(backends))
	for _, b := range backends {
		r := backendRow{name: b.Name()}
		if d, ok := b.(backend.Describer); ok {
			r.hint = d.InstallHint()
			if loc, err := d.Locate(); err == nil {
				r.available = true
				r.location = loc
			}
		}
		rows = append(rows, r)
	}
	return rows
}

func renderBackends(rows []backendRow) string {
	cells := make([][]string, 0, len(rows))
	for i, r := range rows {
		status, loc := "missing", "-"
		if r.available {
			status, loc = "available", r.location
		}
		cells = append(cells, []string{strconv.Itoa(i + 1), r.name, status, loc})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Backend", "Status", "Location").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 2 && row >= 0 && row < len(rows) {
				if rows[row].available {
					return styleCell.Foreground(colorGreen)
				}
				return styleCell.Foreground(colorRed)
			}
			return styleCell
		}).
		String()
}
