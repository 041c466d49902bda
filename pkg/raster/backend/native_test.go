package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/iconforge/pkg/raster"
)

// wideRed is a 2:1 red rectangle; rendered square it must fill the canvas.
const wideRed = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" width="100" height="50">
  <rect x="0" y="0" width="100" height="50" fill="#ff0000"/>
</svg>
`

func writeSVG(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.svg")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNativeRendersSquare(t *testing.T) {
	src := writeSVG(t, wideRed)
	dest := filepath.Join(t.TempDir(), "favicon.png")

	out := NewNative().Attempt(context.Background(), raster.Job{Source: src, Destination: dest, Size: 32})
	if !out.OK() {
		t.Fatalf("Attempt() = %+v, want success", out)
	}

	img, err := imaging.Open(dest)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("output is %dx%d, want 32x32", b.Dx(), b.Dy())
	}

	// The rectangle is stretched over the whole square, corners included.
	for _, p := range [][2]int{{16, 16}, {2, 2}, {29, 29}} {
		r, g, b, a := img.At(p[0], p[1]).RGBA()
		if r>>8 < 200 || g>>8 > 40 || b>>8 > 40 || a>>8 < 200 {
			t.Errorf("pixel %v = (%d,%d,%d,%d), want opaque red", p, r>>8, g>>8, b>>8, a>>8)
		}
	}
}

func TestNativeOverwrites(t *testing.T) {
	src := writeSVG(t, wideRed)
	dest := filepath.Join(t.TempDir(), "icon.png")
	if err := os.WriteFile(dest, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if out := NewNative().Attempt(context.Background(), raster.Job{Source: src, Destination: dest, Size: 16}); !out.OK() {
		t.Fatalf("Attempt() = %+v, want success", out)
	}
	if _, err := imaging.Open(dest); err != nil {
		t.Errorf("destination not replaced with a PNG: %v", err)
	}
}

func TestNativeFailures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		job  raster.Job
	}{
		{"missing source", raster.Job{Source: filepath.Join(dir, "missing.svg"), Destination: filepath.Join(dir, "a.png"), Size: 16}},
		{"no viewBox", raster.Job{Source: writeSVG(t, `<svg xmlns="http://www.w3.org/2000/svg"></svg>`), Destination: filepath.Join(dir, "b.png"), Size: 16}},
		{"bad size", raster.Job{Source: writeSVG(t, wideRed), Destination: filepath.Join(dir, "c.png"), Size: 0}},
		{"missing output dir", raster.Job{Source: writeSVG(t, wideRed), Destination: filepath.Join(dir, "nope", "d.png"), Size: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewNative().Attempt(context.Background(), tt.job)
			if out.Status != raster.StatusFailed {
				t.Errorf("Attempt() = %+v, want failed", out)
			}
			if out.Detail == "" {
				t.Error("failed outcome should carry a detail")
			}
		})
	}
}

func TestNativeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := NewNative().Attempt(ctx, raster.Job{Source: writeSVG(t, wideRed), Destination: filepath.Join(t.TempDir(), "a.png"), Size: 16})
	if out.Status != raster.StatusFailed {
		t.Errorf("Attempt() = %+v, want failed", out)
	}
}

func TestNativeAlwaysLocated(t *testing.T) {
	n := NewNative()
	if p, err := n.Locate(); err != nil || p != builtin {
		t.Errorf("Locate() = %q, %v; want %q", p, err, builtin)
	}
	if n.InstallHint() != "" {
		t.Errorf("InstallHint() = %q, want empty", n.InstallHint())
	}
}
