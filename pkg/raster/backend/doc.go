// Package backend provides the [raster.Backend] implementations used by the
// conversion chain.
//
// # Backends
//
// In default priority order:
//
//   - rsvg-convert: librsvg command-line tool
//   - imagemagick: the magick (v7) or convert (v6) command
//   - inkscape: Inkscape's command-line export
//   - native: in-process renderer built on oksvg and rasterx
//
// Process-based tools come first because they handle the widest range of SVG
// features. The native backend is linked into the binary, so it is always
// available and acts as the last resort.
//
// A tool that cannot be located yields [raster.NotAvailable]. A tool that runs
// and exits non-zero yields [raster.Failed] with its stderr as the detail.
//
//	backends := backend.Defaults(backend.Tools{RsvgConvert: "/opt/bin/rsvg-convert"})
//	orch := raster.New(backends)
package backend
