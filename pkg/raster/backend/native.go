package backend

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// builtin is what Locate reports for the in-process renderer.
const builtin = "built-in"

// Native renders SVGs in-process with oksvg and rasterx.
//
// It supports paths, basic shapes, gradients and transforms, but not text,
// filters or masks. Unsupported elements are skipped rather than failing the
// render.
type Native struct{}

// NewNative returns the in-process backend.
func NewNative() *Native { return &Native{} }

// Name implements raster.Backend.
func (n *Native) Name() string { return NameNative }

// Locate implements Describer. The renderer is linked in, so it never fails.
func (n *Native) Locate() (string, error) { return builtin, nil }

// InstallHint implements Describer.
func (n *Native) InstallHint() string { return "" }

// Attempt implements raster.Backend.
func (n *Native) Attempt(ctx context.Context, job raster.Job) (out raster.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = raster.Failed(fmt.Sprintf("native renderer panicked: %v", r))
		}
	}()
	return raster.OutcomeOf(n.render(ctx, job))
}

func (n *Native) render(ctx context.Context, job raster.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := errors.ValidateSize(job.Size); err != nil {
		return err
	}

	f, err := os.Open(job.Source)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open source")
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return errors.Wrap(errors.ErrCodeToolFailed, err, "parse svg")
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return errors.New(errors.ErrCodeToolFailed, "svg has no viewBox or size")
	}

	img := rasterize(icon, job.Size)
	if err := imaging.Save(img, job.Destination); err != nil {
		return errors.Wrap(errors.ErrCodeToolFailed, err, "write png")
	}
	return nil
}

// rasterize draws icon onto a size x size canvas. The viewBox is scaled on
// each axis independently, so non-square sources are stretched.
func rasterize(icon *oksvg.SvgIcon, size int) *image.RGBA {
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img
}
