package backend

import (
	"github.com/matzehuels/iconforge/pkg/raster"
)

// Backend names, in default priority order.
const (
	NameRsvgConvert = "rsvg-convert"
	NameImageMagick = "imagemagick"
	NameInkscape    = "inkscape"
	NameNative      = "native"
)


// Tools holds explicit binary locations. An empty field means "search PATH".
type Tools struct {
	RsvgConvert string
	Magick      string
	Inkscape    string
}

// Describer is implemented by backends that can report where they live and
// how to install them.
type Describer interface {
	// Locate returns the resolved binary path, or an error coded
	// TOOL_NOT_AVAILABLE when the tool cannot be found.
	Locate() (string, error)
	// InstallHint returns a one-line install instruction, or "" if none is needed.
	InstallHint() string
}

// Defaults returns every backend in priority order: process-based tools first,
// then the in-process renderer.
func Defaults(tools Tools) []raster.Backend {
	return []raster.Backend{
		NewRsvgConvert(tools.RsvgConvert),
		NewImageMagick(tools.Magick),
		NewInkscape(tools.Inkscape),
		NewNative(),
	}
}

// InstallHints collects the non-empty install hints of backends, in order.
func InstallHints(backends []raster.Backend) []string {
	var hints []string
	for _, b := range backends {
		if d, ok := b.(Describer); ok {
			if h := d.InstallHint(); h != "" {
				hints = append(hints, h)
			}
		}
	}
	return hints
}
