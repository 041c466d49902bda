// Package report turns batch results into a JSON report and checks produced
// PNGs against the sizes they were requested at.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/iconforge/pkg/raster"
)

// Report is the serialized form of a batch run.
type Report struct {
	RunID     string    `json:"run_id"`
	Generated time.Time `json:"generated_at"`
	Source    string    `json:"source"`
	Attempted int       `json:"attempted"`
	Succeeded int       `json:"succeeded"`
	ExitCode  int       `json:"exit_code"`
	Jobs      []Job     `json:"jobs"`
}

// Job is one resolved conversion.
type Job struct {
	Destination string    `json:"destination"`
	Size        int       `json:"size"`
	OK          bool      `json:"ok"`
	Backend     string    `json:"backend,omitempty"`
	DurationMS  int64     `json:"duration_ms"`
	Attempts    []Attempt `json:"attempts"`
}

// Attempt is one backend invocation.
type Attempt struct {
	Backend    string        `json:"backend"`
	Status     raster.Status `json:"status"`
	Detail     string        `json:"detail,omitempty"`
	DurationMS int64         `json:"duration_ms"`
}

// New builds a report for batch with a fresh run ID.
func New(source string, batch raster.BatchResult) Report {
	r := Report{
		RunID:     uuid.NewString(),
		Generated: time.Now().UTC(),
		Source:    source,
		Attempted: batch.Attempted,
		Succeeded: batch.Succeeded,
		ExitCode:  batch.ExitCode(),
		Jobs:      make([]Job, 0, len(batch.Jobs)),
	}
	for _, jr := range batch.Jobs {
		j := Job{
			Destination: jr.Job.Destination,
			Size:        jr.Job.Size,
			OK:          jr.OK(),
			Backend:     jr.Backend,
			DurationMS:  jr.Duration.Milliseconds(),
			Attempts:    make([]Attempt, 0, len(jr.Attempts)),
		}
		for _, a := range jr.Attempts {
			j.Attempts = append(j.Attempts, Attempt{
				Backend:    a.Backend,
				Status:     a.Outcome.Status,
				Detail:     a.Outcome.Detail,
				DurationMS: a.Duration.Milliseconds(),
			})
		}
		r.Jobs = append(r.Jobs, j)
	}
	return r
}

// Write saves r as indented JSON at path, replacing any existing file.
func Write(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
