package backend

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// recordScript writes its arguments, one per line, to $ICONFORGE_ARGS.
const recordScript = `#!/bin/sh
printf '%s\n' "$@" > "$ICONFORGE_ARGS"
`

const failScript = `#!/bin/sh
echo "unrecognized svg element" >&2
exit 3
`

// fakeTool installs an executable script named name into dir.
func fakeTool(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolatedPath points PATH at a fresh empty directory and returns it.
func isolatedPath(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fakes need a POSIX shell")
	}
	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}

func readArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("tool was not invoked: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestCommandArgs(t *testing.T) {
	job := raster.Job{Source: "icon.svg", Destination: "icons/Icon-192.png", Size: 192}

	tests := []struct {
		name string
		cmd  *Command
		want []string
	}{
		{
			name: NameRsvgConvert,
			cmd:  NewRsvgConvert(""),
			want: []string{"-w", "192", "-h", "192", "icon.svg", "-o", "icons/Icon-192.png"},
		},
		{
			name: NameImageMagick,
			cmd:  NewImageMagick(""),
			want: []string{"-background", "none", "icon.svg", "-resize", "192x192!", "icons/Icon-192.png"},
		},
		{
			name: NameInkscape,
			cmd:  NewInkscape(""),
			want: []string{
				"--export-type=png", "--export-width=192", "--export-height=192",
				"--export-filename=icons/Icon-192.png", "icon.svg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.cmd.Name(), tt.name)
			}
			got := tt.cmd.Args(job)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandSuccess(t *testing.T) {
	dir := isolatedPath(t)
	argsFile := filepath.Join(t.TempDir(), "args")
	t.Setenv("ICONFORGE_ARGS", argsFile)
	fakeTool(t, dir, "rsvg-convert", recordScript)

	job := raster.Job{Source: "icon.svg", Destination: "favicon.png", Size: 32}
	out := NewRsvgConvert("").Attempt(context.Background(), job)

	if out.Status != raster.StatusSuccess {
		t.Fatalf("Attempt() = %+v, want success", out)
	}
	got := readArgs(t, argsFile)
	want := []string{"-w", "32", "-h", "32", "icon.svg", "-o", "favicon.png"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("invoked with %q, want %q", got, want)
	}
}

func TestCommandFailed(t *testing.T) {
	dir := isolatedPath(t)
	fakeTool(t, dir, "inkscape", failScript)

	out := NewInkscape("").Attempt(context.Background(), raster.Job{Source: "a.svg", Destination: "a.png", Size: 16})

	if out.Status != raster.StatusFailed {
		t.Fatalf("Attempt() = %+v, want failed", out)
	}
	if want := "unrecognized svg element: exit status 3"; out.Detail != want {
		t.Errorf("Detail = %q, want %q", out.Detail, want)
	}
}

func TestCommandFailedWithoutStderr(t *testing.T) {
	dir := isolatedPath(t)
	fakeTool(t, dir, "inkscape", "#!/bin/sh\nexit 2\n")

	out := NewInkscape("").Attempt(context.Background(), raster.Job{Source: "a.svg", Destination: "a.png", Size: 16})

	if want := "conversion failed: exit status 2"; out.Detail != want {
		t.Errorf("Detail = %q, want %q", out.Detail, want)
	}
}

func TestCommandNotAvailable(t *testing.T) {
	isolatedPath(t)

	for _, c := range []*Command{NewRsvgConvert(""), NewImageMagick(""), NewInkscape("")} {
		t.Run(c.Name(), func(t *testing.T) {
			out := c.Attempt(context.Background(), raster.Job{Source: "a.svg", Destination: "a.png", Size: 16})
			if out.Status != raster.StatusNotAvailable {
				t.Errorf("Attempt() = %+v, want not available", out)
			}
			if _, err := c.Locate(); !errors.Is(err, errors.ErrCodeToolNotAvailable) {
				t.Errorf("Locate() error = %v, want TOOL_NOT_AVAILABLE", err)
			}
		})
	}
}

func TestImageMagickFallsBackToConvert(t *testing.T) {
	dir := isolatedPath(t)
	convert := fakeTool(t, dir, "convert", recordScript)
	t.Setenv("ICONFORGE_ARGS", filepath.Join(t.TempDir(), "args"))

	got, err := NewImageMagick("").Locate()
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != convert {
		t.Errorf("Locate() = %q, want %q", got, convert)
	}

	magick := fakeTool(t, dir, "magick", recordScript)
	if got, _ := NewImageMagick("").Locate(); got != magick {
		t.Errorf("Locate() = %q, want magick %q once installed", got, magick)
	}
}

func TestImageMagickCandidates(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"magick", "convert"}},
		{"darwin", []string{"magick", "convert"}},
		{"windows", []string{"magick"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := imageMagickCandidates(tt.goos); strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("imageMagickCandidates(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestCommandOverride(t *testing.T) {
	isolatedPath(t)
	elsewhere := t.TempDir()
	tool := fakeTool(t, elsewhere, "my-rsvg", recordScript)
	t.Setenv("ICONFORGE_ARGS", filepath.Join(t.TempDir(), "args"))

	c := NewRsvgConvert(tool)
	if got, err := c.Locate(); err != nil || got != tool {
		t.Fatalf("Locate() = %q, %v; want %q", got, err, tool)
	}
	if out := c.Attempt(context.Background(), raster.Job{Source: "a.svg", Destination: "a.png", Size: 8}); !out.OK() {
		t.Errorf("Attempt() = %+v, want success", out)
	}

	missing := NewRsvgConvert(filepath.Join(elsewhere, "nope"))
	if out := missing.Attempt(context.Background(), raster.Job{Size: 8}); out.Status != raster.StatusNotAvailable {
		t.Errorf("Attempt() with missing override = %+v, want not available", out)
	}
}

func TestCommandCancelled(t *testing.T) {
	dir := isolatedPath(t)
	fakeTool(t, dir, "rsvg-convert", "#!/bin/sh\nexit 0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := NewRsvgConvert("").Attempt(ctx, raster.Job{Source: "a.svg", Destination: "a.png", Size: 8})
	if out.Status != raster.StatusFailed {
		t.Errorf("Attempt() on cancelled context = %+v, want failed", out)
	}
}

func TestTrimDetail(t *testing.T) {
	long := strings.Repeat("x", maxDetail+10)
	if got := trimDetail(long); len(got) <= maxDetail || !strings.HasSuffix(got, "…") {
		t.Errorf("trimDetail() did not truncate: len %d", len(got))
	}
	if got := trimDetail("  warn\n"); got != "warn" {
		t.Errorf("trimDetail() = %q, want %q", got, "warn")
	}

	// "é" is two bytes; with an odd prefix its second byte sits at maxDetail.
	split := "x" + strings.Repeat("é", maxDetail)
	got := trimDetail(split)
	if !utf8.ValidString(got) {
		t.Errorf("trimDetail() split a rune: %q", got[len(got)-8:])
	}
	if body := strings.TrimSuffix(got, "…"); len(body) != maxDetail-1 {
		t.Errorf("trimDetail() kept %d bytes, want %d", len(body), maxDetail-1)
	}
}
