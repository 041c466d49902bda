package raster

import (
	"github.com/matzehuels/iconforge/pkg/errors"
)

// Status is the kind of result a backend reports for one attempt.
type Status int

const (
	// StatusSuccess means the backend wrote the destination.
	StatusSuccess Status = iota
	// StatusNotAvailable means the backend's tool could not be located.
	StatusNotAvailable
	// StatusFailed means the tool was present but the conversion errored.
	StatusFailed
)

// String returns the status name used in logs, hooks and reports.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotAvailable:
		return "not_available"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is the result of one backend attempt. Detail is only set for
// StatusFailed and is meant for display, never for matching.
type Outcome struct {
	Status Status
	Detail string
}

// Succeeded returns a success outcome.
func Succeeded() Outcome { return Outcome{Status: StatusSuccess} }

// NotAvailable returns an outcome for a backend whose tool is missing.
func NotAvailable() Outcome { return Outcome{Status: StatusNotAvailable} }

// Failed returns a failure outcome carrying diagnostic text.
func Failed(detail string) Outcome { return Outcome{Status: StatusFailed, Detail: detail} }

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool { return o.Status == StatusSuccess }

// OutcomeOf maps a backend error onto an outcome. A nil error is a success, an
// error coded [errors.ErrCodeToolNotAvailable] means the tool is missing, and
// anything else is a failure whose detail is the error's user message.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Succeeded()
	case errors.Is(err, errors.ErrCodeToolNotAvailable):
		return NotAvailable()
	default:
		return Failed(errors.UserMessage(err))
	}
}
