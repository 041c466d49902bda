package raster_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/iconforge/pkg/raster"
)

type staticBackend struct {
	name string
	out  raster.Outcome
}

func (s staticBackend) Name() string                                       { return s.name }
func (s staticBackend) Attempt(context.Context, raster.Job) raster.Outcome { return s.out }

func ExampleOrchestrator_RunBatch() {
	orch := raster.New([]raster.Backend{
		staticBackend{"rsvg-convert", raster.NotAvailable()},
		staticBackend{"inkscape", raster.Succeeded()},
	})

	result := orch.RunBatch(context.Background(), raster.Jobs("icon.svg", ".", raster.DefaultTable))
	fmt.Printf("%d/%d via %s, exit %d\n",
		result.Succeeded, result.Attempted, result.Jobs[0].Backend, result.ExitCode())
	// Output: 5/5 via inkscape, exit 0
}
