// Package raster implements the SVG to PNG fallback chain.
//
// # Overview
//
// A [Job] asks for one square PNG of a given size. A [Backend] is one way of
// producing it: an external tool such as rsvg-convert, or an in-process
// renderer. Every backend reports an [Outcome] with one of three statuses:
//
//   - [StatusSuccess]: the destination was written
//   - [StatusNotAvailable]: the tool is not installed; not an error
//   - [StatusFailed]: the tool ran and failed; Detail says why
//
// The [Orchestrator] holds backends in priority order. For each job it tries
// them in turn and stops at the first success. Jobs are independent: every job
// starts again from the first backend, and a failed job never stops the batch.
//
//	orch := raster.New(backend.Defaults(backend.Tools{}))
//	result := orch.RunBatch(ctx, raster.Jobs("icon.svg", ".", raster.DefaultTable))
//	os.Exit(result.ExitCode())
//
// Backend implementations live in the [backend] subpackage.
package raster
