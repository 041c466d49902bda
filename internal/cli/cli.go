// Package cli implements the iconforge command-line interface.
//
// # Commands
//
//   - convert: rasterize the SVG into the icon set
//   - backends: show which conversion backends are installed
//   - verify: check that produced icons have the expected dimensions
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and, at debug level, the orchestrator logs
// every backend attempt, including backends that are simply not installed.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "iconforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	ui     *console
	stderr io.Writer
}

// New creates a new CLI instance. Console output goes to stdout; logs and the
// progress spinner go to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		ui:     &console{w: stdout},
		stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Iconforge rasterizes an SVG into a fixed set of PNG icons",
		Long:          `Iconforge converts one SVG into the PNG icon set a web app needs (192 and 512 px icons, maskable variants and a 32 px favicon), trying rsvg-convert, ImageMagick, Inkscape and a built-in renderer in that order.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.backendsCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// spinnerEnabled reports whether stderr is an interactive terminal.
func (c *CLI) spinnerEnabled() bool {
	f, ok := c.stderr.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
