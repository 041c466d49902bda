package raster

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/iconforge/pkg/observability"
)

// Backend is one way of rasterizing an SVG into a square PNG.
//
// Attempt must contain its own failures: a missing tool is reported as
// NotAvailable, and anything that goes wrong once the tool runs is reported as
// Failed. Attempt must not panic or return partial statuses.
type Backend interface {
	// Name identifies the backend in logs and console output.
	Name() string
	// Attempt converts job.Source into job.Destination at job.Size.
	Attempt(ctx context.Context, job Job) Outcome
}

// Orchestrator resolves jobs by trying its backends in priority order.
//
// An Orchestrator holds no per-run state and may be reused across batches.
type Orchestrator struct {
	backends []Backend
	logger   *log.Logger
	hooks    observability.ConversionHooks
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for per-attempt debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHooks sets the hooks that receive conversion events. The default is the
// globally registered [observability.Conversion] hooks.
func WithHooks(h observability.ConversionHooks) Option {
	return func(o *Orchestrator) {
		if h != nil {
			o.hooks = h
		}
	}
}

// New creates an orchestrator over backends, tried in the given order.
func New(backends []Backend, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		backends: append([]Backend(nil), backends...),
		logger:   log.Default(),
		hooks:    observability.Conversion(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Convert reports whether some backend produced job's destination.
func (o *Orchestrator) Convert(ctx context.Context, job Job) bool {
	return o.Resolve(ctx, job).OK()
}

// Resolve tries each backend in order until one succeeds. Backends after the
// first success are never invoked. NotAvailable and Failed both move on to the
// next backend.
func (o *Orchestrator) Resolve(ctx context.Context, job Job) JobResult {
	start := time.Now()
	o.hooks.OnJobStart(ctx, job.Destination, job.Size)

	res := JobResult{Job: job}
	for _, b := range o.backends {
		attemptStart := time.Now()
		out := b.Attempt(ctx, job)
		elapsed := time.Since(attemptStart)

		res.Attempts = append(res.Attempts, Attempt{Backend: b.Name(), Outcome: out, Duration: elapsed})
		o.hooks.OnAttempt(ctx, job.Destination, b.Name(), out.Status.String(), out.Detail, elapsed)
		o.logAttempt(job, b.Name(), out, elapsed)

		if out.OK() {
			res.Succeeded = true
			res.Backend = b.Name()
			break
		}
	}

	res.Duration = time.Since(start)
	o.hooks.OnJobComplete(ctx, job.Destination, res.Backend, res.OK(), res.Duration)
	return res
}

// RunBatch resolves every job in order. A failed job never prevents the
// following jobs from running.
func (o *Orchestrator) RunBatch(ctx context.Context, jobs []Job) BatchResult {
	start := time.Now()
	o.hooks.OnBatchStart(ctx, len(jobs))

	batch := BatchResult{Jobs: make([]JobResult, 0, len(jobs))}
	for _, job := range jobs {
		res := o.Resolve(ctx, job)
		batch.Attempted++
		if res.OK() {
			batch.Succeeded++
		}
		batch.Jobs = append(batch.Jobs, res)
	}

	batch.Duration = time.Since(start)
	o.hooks.OnBatchComplete(ctx, batch.Attempted, batch.Succeeded, batch.Duration)
	o.logger.Debug("batch complete",
		"attempted", batch.Attempted,
		"succeeded", batch.Succeeded,
		"duration", batch.Duration.Round(time.Millisecond))
	return batch
}

func (o *Orchestrator) logAttempt(job Job, backend string, out Outcome, d time.Duration) {
	kv := []any{
		"backend", backend,
		"dest", job.Destination,
		"size", job.Size,
		"status", out.Status,
		"duration", d.Round(time.Millisecond),
	}
	if out.Detail != "" {
		kv = append(kv, "detail", out.Detail)
	}
	o.logger.Debug("backend attempt", kv...)
}
