package raster

import "time"

// Attempt records one backend invocation inside a job.
type Attempt struct {
	Backend  string
	Outcome  Outcome
	Duration time.Duration
}

// JobResult is the resolution of a single job. Succeeded is set when some
// backend reported success; Backend is that backend's name.
type JobResult struct {
	Job       Job
	Succeeded bool
	Backend   string
	Attempts  []Attempt
	Duration  time.Duration
}

// OK reports whether some backend produced the job's destination.
func (r JobResult) OK() bool { return r.Succeeded }

// BatchResult aggregates a batch. Succeeded never exceeds Attempted.
type BatchResult struct {
	Attempted int
	Succeeded int
	Jobs      []JobResult
	Duration  time.Duration
}

// OK reports whether every attempted job succeeded.
func (b BatchResult) OK() bool { return b.Succeeded == b.Attempted }

// Failed returns the jobs that exhausted every backend.
func (b BatchResult) Failed() []JobResult {
	var out []JobResult
	for _, j := range b.Jobs {
		if !j.OK() {
			out = append(out, j)
		}
	}
	return out
}

// ExitCode returns the process exit status for the batch: 0 when every job
// succeeded, 1 otherwise.
func (b BatchResult) ExitCode() int {
	if b.OK() {
		return 0
	}
	return 1
}
