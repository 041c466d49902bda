package backend

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// maxDetail caps how much tool stderr ends up in a failure detail.
const maxDetail = 512

// Command is a backend that shells out to an external converter.
type Command struct {
	name       string
	candidates []string // binaries searched on PATH, first match wins
	override   string   // explicit binary, replaces candidates when set
	hint       string
	args       func(job raster.Job) []string
}

// NewRsvgConvert returns the librsvg backend. If path is non-empty it is used
// instead of searching PATH.
func NewRsvgConvert(path string) *Command {
	return &Command{
		name:       NameRsvgConvert,
		candidates: []string{"rsvg-convert"},
		override:   path,
		hint:       "apt install librsvg2-bin (Linux) or brew install librsvg (macOS)",
		args: func(job raster.Job) []string {
			n := strconv.Itoa(job.Size)
			return []string{"-w", n, "-h", n, job.Source, "-o", job.Destination}
		},
	}
}

// NewImageMagick returns the ImageMagick backend. It prefers the v7 magick
// command and falls back to the v6 convert command.
func NewImageMagick(path string) *Command {
	return &Command{
		name:       NameImageMagick,
		candidates: imageMagickCandidates(runtime.GOOS),
		override:   path,
		hint:       "apt install imagemagick (Linux) or brew install imagemagick (macOS)",
		args: func(job raster.Job) []string {
			n := strconv.Itoa(job.Size)
			// "!" ignores the aspect ratio so the output is always square.
			return []string{"-background", "none", job.Source, "-resize", n + "x" + n + "!", job.Destination}
		},
	}
}

// imageMagickCandidates lists the ImageMagick binaries to search for. On
// Windows convert.exe is the System32 filesystem tool, so only magick is used.
func imageMagickCandidates(goos string) []string {
	if goos == "windows" {
		return []string{"magick"}
	}
	return []string{"magick", "convert"}
}

// NewInkscape returns the Inkscape (1.x) backend.
func NewInkscape(path string) *Command {
	return &Command{
		name:       NameInkscape,
		candidates: []string{"inkscape"},
		override:   path,
		hint:       "apt install inkscape (Linux) or brew install --cask inkscape (macOS)",
		args: func(job raster.Job) []string {
			n := strconv.Itoa(job.Size)
			return []string{
				"--export-type=png",
				"--export-width=" + n,
				"--export-height=" + n,
				"--export-filename=" + job.Destination,
				job.Source,
			}
		},
	}
}

// Name implements raster.Backend.
func (c *Command) Name() string { return c.name }

// InstallHint implements Describer.
func (c *Command) InstallHint() string { return c.hint }

// Args returns the argument list the tool is invoked with for job.
func (c *Command) Args(job raster.Job) []string { return c.args(job) }

// Locate implements Describer.
func (c *Command) Locate() (string, error) {
	candidates := c.candidates
	if c.override != "" {
		candidates = []string{c.override}
	}
	for _, bin := range candidates {
		if p, err := exec.LookPath(bin); err == nil {
			return p, nil
		}
	}
	return "", errors.New(errors.ErrCodeToolNotAvailable, "%s not found (looked for %s)", c.name, strings.Join(candidates, ", "))
}

// Attempt implements raster.Backend.
func (c *Command) Attempt(ctx context.Context, job raster.Job) raster.Outcome {
	return raster.OutcomeOf(c.run(ctx, job))
}

func (c *Command) run(ctx context.Context, job raster.Job) error {
	bin, err := c.Locate()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, c.args(job)...)
	var errBuf bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if stderrors.Is(err, exec.ErrNotFound) {
			return errors.Wrap(errors.ErrCodeToolNotAvailable, err, "%s disappeared", c.name)
		}
		msg := trimDetail(errBuf.String())
		if msg == "" {
			msg = "conversion failed"
		}
		return errors.Wrap(errors.ErrCodeToolFailed, err, "%s", msg)
	}
	return nil
}

// trimDetail cuts s to at most maxDetail bytes without splitting a rune.
func trimDetail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxDetail {
		return s
	}
	cut := maxDetail
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
