package report

import (
	"os"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// Check is the verification result for one job's destination.
type Check struct {
	Job    raster.Job
	Width  int
	Height int
	Err    error
}

// OK reports whether the destination exists with the requested dimensions.
func (c Check) OK() bool { return c.Err == nil }

// Inspect decodes the image at path and returns its dimensions.
func Inspect(path string) (width, height int, err error) {
	if _, err := os.Stat(path); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", path)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", path)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Verify checks each job's destination, in order.
func Verify(jobs []raster.Job) []Check {
	checks := make([]Check, 0, len(jobs))
	for _, job := range jobs {
		c := Check{Job: job}
		c.Width, c.Height, c.Err = Inspect(job.Destination)
		if c.Err == nil && (c.Width != job.Size || c.Height != job.Size) {
			c.Err = errors.New(errors.ErrCodeDimensionMismatch, "%s is %dx%d, want %dx%d",
				job.Destination, c.Width, c.Height, job.Size, job.Size)
		}
		checks = append(checks, c)
	}
	return checks
}
