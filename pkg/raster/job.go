package raster

import (
	"path/filepath"

	"github.com/matzehuels/iconforge/pkg/errors"
)

// DefaultSource is the SVG converted when no source is given.
const DefaultSource = "icon_duolingo.svg"

// Job is a single conversion request: render Source as a Size x Size PNG at
// Destination. The output is always square, whatever the source aspect ratio.
type Job struct {
	Source      string
	Destination string
	Size        int
}

// Entry is one row of the size table: a destination relative to the output
// root and its square pixel size.
type Entry struct {
	Destination string
	Size        int
}

// DefaultTable is the fixed set of outputs, in conversion order.
var DefaultTable = []Entry{
	{Destination: "icons/Icon-192.png", Size: 192},
	{Destination: "icons/Icon-512.png", Size: 512},
	{Destination: "icons/Icon-maskable-192.png", Size: 192},
	{Destination: "icons/Icon-maskable-512.png", Size: 512},
	{Destination: "favicon.png", Size: 32},
}

// Jobs builds one job per table entry, in table order. Destinations are
// joined onto dir; an empty dir means the working directory.
func Jobs(source, dir string, table []Entry) []Job {
	jobs := make([]Job, 0, len(table))
	for _, e := range table {
		dest := e.Destination
		if dir != "" && dir != "." {
			dest = filepath.Join(dir, e.Destination)
		}
		jobs = append(jobs, Job{Source: source, Destination: dest, Size: e.Size})
	}
	return jobs
}

// ValidateTable checks that every entry has a positive size and a relative
// .png destination, and that no two entries share a destination.
func ValidateTable(table []Entry) error {
	seen := make(map[string]bool, len(table))
	for _, e := range table {
		if err := errors.ValidateDestination(e.Destination); err != nil {
			return err
		}
		if err := errors.ValidateSize(e.Size); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", e.Destination)
		}
		key := filepath.ToSlash(filepath.Clean(e.Destination))
		if seen[key] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate destination %s", e.Destination)
		}
		seen[key] = true
	}
	return nil
}
