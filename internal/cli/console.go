package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/matzehuels/iconforge/pkg/observability"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// consoleHooks prints conversion progress for humans. Failed attempts are
// buffered while the spinner runs and printed once the job finishes.
type consoleHooks struct {
	observability.NoopConversionHooks

	ui    *console
	hints []string

	// spinnerOut is where the spinner draws; nil disables it.
	spinnerOut io.Writer
	ctx        context.Context

	spin     *Spinner
	size     int
	failures []string
}

func newConsoleHooks(ctx context.Context, ui *console, hints []string, spinnerOut io.Writer) *consoleHooks {
	return &consoleHooks{ui: ui, hints: hints, spinnerOut: spinnerOut, ctx: ctx}
}

func (h *consoleHooks) OnJobStart(_ context.Context, dest string, size int) {
	h.size = size
	h.failures = h.failures[:0]
	if h.spinnerOut != nil {
		h.spin = newSpinner(h.ctx, h.spinnerOut, fmt.Sprintf("Converting %s (%dx%d)", dest, size, size))
		h.spin.Start()
	}
}

func (h *consoleHooks) OnAttempt(_ context.Context, _, backend, status, detail string, _ time.Duration) {
	if status == raster.StatusFailed.String() {
		h.failures = append(h.failures, fmt.Sprintf("%s: %s", backend, detail))
	}
}

func (h *consoleHooks) OnJobComplete(_ context.Context, dest, backend string, ok bool, _ time.Duration) {
	if h.spin != nil {
		h.spin.Stop()
		h.spin = nil
	}

	if ok {
		h.ui.success("Created %s (%dx%d) with %s", dest, h.size, h.size, backend)
		for _, f := range h.failures {
			h.ui.detail("skipped %s", f)
		}
		return
	}

	h.ui.failure("Could not convert %s", dest)
	for _, f := range h.failures {
		h.ui.detail("%s", f)
	}
	if len(h.hints) > 0 {
		h.ui.info("Install one of these tools:")
		for _, hint := range h.hints {
			h.ui.detail("- %s", hint)
		}
	}
}

func (h *consoleHooks) OnBatchComplete(_ context.Context, attempted, succeeded int, d time.Duration) {
	h.ui.newline()
	msg := fmt.Sprintf("%d/%d icons converted (%s)", succeeded, attempted, d.Round(time.Millisecond))
	if succeeded == attempted {
		h.ui.line(StyleSuccess.Render(msg))
		return
	}
	h.ui.line(StyleError.Render(msg))
}
