// Package pkg provides the core libraries for Iconforge icon rasterization.
//
// # Overview
//
// Iconforge turns one SVG into the fixed PNG icon set a web app ships with.
// Every icon is produced by walking an ordered chain of conversion backends
// and stopping at the first one that succeeds. The pkg directory is organized
// as follows:
//
//  1. [raster] - Domain logic (jobs, outcomes, the fallback orchestrator)
//  2. [raster/backend] - rsvg-convert, ImageMagick, Inkscape and the built-in renderer
//  3. [config] - Optional TOML configuration
//  4. [report] - JSON run reports and dimension checks
//  5. [observability] - Conversion hooks for progress and metrics
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/iconforge/pkg/raster"
//	    "github.com/matzehuels/iconforge/pkg/raster/backend"
//	)
//
//	orch := raster.New(backend.Defaults(backend.Tools{}))
//	jobs := raster.Jobs(raster.DefaultSource, ".", raster.DefaultTable)
//	result := orch.RunBatch(context.Background(), jobs)
//	os.Exit(result.ExitCode())
//
// # Testing
//
//	go test ./pkg/...
//	go test -run Example ./pkg/raster
//
// [raster]: https://pkg.go.dev/github.com/matzehuels/iconforge/pkg/raster
// [raster/backend]: https://pkg.go.dev/github.com/matzehuels/iconforge/pkg/raster/backend
// [config]: https://pkg.go.dev/github.com/matzehuels/iconforge/pkg/config
// [report]: https://pkg.go.dev/github.com/matzehuels/iconforge/pkg/report
// [observability]: https://pkg.go.dev/github.com/matzehuels/iconforge/pkg/observability
package pkg
