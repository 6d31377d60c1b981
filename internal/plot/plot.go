// Package plot draws points of the plane as braille text.
package plot

import (
	"image"
	"math"

	"github.com/pkg/errors"

	"github.com/borkshop/quadrant/internal/bitmap"
	"github.com/borkshop/quadrant/internal/braille"
	"github.com/borkshop/quadrant/internal/input"
	"github.com/borkshop/quadrant/internal/point"
)

// ErrInvalidSize is returned for a plot without at least one row and column.
var ErrInvalidSize = errors.New("invalid plot size")

// Options size and decorate a plot.
type Options struct {
	// Cols and Rows are the plot's size in text cells.
	Cols, Rows int
	// Axes draws the X and Y axes, and widens the frame to include the origin.
	Axes bool
}

// Frame maps points of the plane onto the pixels of a bitmap, with Y
// increasing upwards.
type Frame struct {
	Box    point.Box
	Pixels image.Rectangle
}

// NewFrame returns a frame fitting box into pixels. A box with no extent along
// an axis is widened by one unit either side so that its points land mid-plot.
func NewFrame(box point.Box, pixels image.Rectangle) Frame {
	size := box.Size()
	if size.X == 0 {
		box.TopLeft.X--
		box.BottomRight.X++
	}
	if size.Y == 0 {
		box.TopLeft.Y--
		box.BottomRight.Y++
	}
	return Frame{Box: box, Pixels: pixels}
}

// Pixel returns the pixel nearest to pt, and false if pt lies outside the
// frame's box.
func (f Frame) Pixel(pt point.Point) (image.Point, bool) {
	if !f.Box.Contains(pt) {
		return image.Point{}, false
	}
	size := f.Box.Size()
	fx := (pt.X - f.Box.TopLeft.X) / size.X
	fy := (f.Box.BottomRight.Y - pt.Y) / size.Y
	return image.Pt(
		f.Pixels.Min.X+int(math.Round(fx*float64(f.Pixels.Dx()-1))),
		f.Pixels.Min.Y+int(math.Round(fy*float64(f.Pixels.Dy()-1))),
	), true
}

// Render draws the finite points, returning one line per row. Non-finite
// points are skipped.
func Render(pts []point.Point, opts Options) ([]string, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", opts.Cols, opts.Rows)
	}

	finite := make([]point.Point, 0, len(pts)+1)
	for _, pt := range pts {
		if input.IsFinite(pt) {
			finite = append(finite, pt)
		}
	}
	if opts.Axes {
		finite = append(finite, point.Zero)
	}

	bm := bitmap.New(braille.Bounds(image.Rect(0, 0, opts.Cols, opts.Rows)))
	box, ok := point.Bound(finite...)
	if !ok {
		return braille.Lines(bm), nil
	}
	f := NewFrame(box, bm.Bounds())

	if opts.Axes {
		if o, ok := f.Pixel(point.Zero); ok {
			r := bm.Bounds()
			for x := r.Min.X; x < r.Max.X; x++ {
				bm.Set(x, o.Y, true)
			}
			for y := r.Min.Y; y < r.Max.Y; y++ {
				bm.Set(o.X, y, true)
			}
		}
	}
	for _, pt := range finite {
		if px, ok := f.Pixel(pt); ok {
			bm.Set(px.X, px.Y, true)
		}
	}
	return braille.Lines(bm), nil
}
