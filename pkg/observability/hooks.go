// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation of the conversion chain without
// adding hard dependencies on specific observability backends. Consumers can
// register hooks at startup to receive events about batches, jobs, and the
// individual backend attempts inside each job.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for conversion events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConversionHooks(&myHooks{})
//	    // ... run application
//	}
//
// The orchestrator calls hooks to emit events:
//
//	observability.Conversion().OnJobStart(ctx, dest, size)
//	// ... try backends ...
//	observability.Conversion().OnJobComplete(ctx, dest, backend, ok, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Conversion Hooks
// =============================================================================

// ConversionHooks receives events from the conversion orchestrator.
//
// Status values passed to OnAttempt are "success", "not_available" and
// "failed". Detail is only set for "failed".
type ConversionHooks interface {
	// Batch events
	OnBatchStart(ctx context.Context, jobs int)
	OnBatchComplete(ctx context.Context, attempted, succeeded int, duration time.Duration)

	// Job events
	OnJobStart(ctx context.Context, dest string, size int)
	OnJobComplete(ctx context.Context, dest, backend string, ok bool, duration time.Duration)

	// OnAttempt records one backend invocation within a job.
	OnAttempt(ctx context.Context, dest, backend, status, detail string, duration time.Duration)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopConversionHooks is a no-op implementation of ConversionHooks.
type NoopConversionHooks struct{}

func (NoopConversionHooks) OnBatchStart(context.Context, int)                                        {}
func (NoopConversionHooks) OnBatchComplete(context.Context, int, int, time.Duration)                 {}
func (NoopConversionHooks) OnJobStart(context.Context, string, int)                                  {}
func (NoopConversionHooks) OnJobComplete(context.Context, string, string, bool, time.Duration)       {}
func (NoopConversionHooks) OnAttempt(context.Context, string, string, string, string, time.Duration) {}

// =============================================================================
// Fan-out
// =============================================================================

// multiHooks forwards every event to each hook in order.
type multiHooks []ConversionHooks

// Multi returns hooks that forward every event to each of hs in order.
// Nil entries are dropped.
func Multi(hs ...ConversionHooks) ConversionHooks {
	m := make(multiHooks, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

func (m multiHooks) OnBatchStart(ctx context.Context, jobs int) {
	for _, h := range m {
		h.OnBatchStart(ctx, jobs)
	}
}

func (m multiHooks) OnBatchComplete(ctx context.Context, attempted, succeeded int, d time.Duration) {
	for _, h := range m {
		h.OnBatchComplete(ctx, attempted, succeeded, d)
	}
}

func (m multiHooks) OnJobStart(ctx context.Context, dest string, size int) {
	for _, h := range m {
		h.OnJobStart(ctx, dest, size)
	}
}

func (m multiHooks) OnJobComplete(ctx context.Context, dest, backend string, ok bool, d time.Duration) {
	for _, h := range m {
		h.OnJobComplete(ctx, dest, backend, ok, d)
	}
}

func (m multiHooks) OnAttempt(ctx context.Context, dest, backend, status, detail string, d time.Duration) {
	for _, h := range m {
		h.OnAttempt(ctx, dest, backend, status, detail, d)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	conversionHooks ConversionHooks = NoopConversionHooks{}
	hooksMu         sync.RWMutex
)

// SetConversionHooks registers custom conversion hooks.
// This should be called once at application startup before any conversions run.
func SetConversionHooks(h ConversionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		conversionHooks = h
	}
}

// Conversion returns the registered conversion hooks.
func Conversion() ConversionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return conversionHooks
}

// Reset restores the hooks to their no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	conversionHooks = NoopConversionHooks{}
}
