package point

import "github.com/borkshop/quadrant/internal/moremath"

// Bx is a convenience constructor for Box.
func Bx(tlx, tly, brx, bry float64) Box {
	return Box{Point{tlx, tly}, Point{brx, bry}}
}

// Box represents a bounding box defined by a top-left and bottom-right point;
// top-left holds the minimum of each axis.
type Box struct {
	TopLeft     Point
	BottomRight Point
}

// Bound returns the smallest box containing all the given points, and false
// if there are none.
func Bound(pts ...Point) (Box, bool) {
	if len(pts) == 0 {
		return Box{}, false
	}
	b := Box{pts[0], pts[0]}
	for _, pt := range pts[1:] {
		b = b.ExpandTo(pt)
	}
	return b, true
}

// Size returns the width and height of the box as a point.
func (b Box) Size() Point {
	return b.BottomRight.Sub(b.TopLeft).Abs()
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return b.TopLeft.Add(b.BottomRight).Scale(0.5)
}

// ExpandTo expands a copy of the box to include the given point, returning the
// copy.
func (b Box) ExpandTo(pt Point) Box {
	b.TopLeft = Pt(
		moremath.Min(b.TopLeft.X, pt.X),
		moremath.Min(b.TopLeft.Y, pt.Y),
	)
	b.BottomRight = Pt(
		moremath.Max(b.BottomRight.X, pt.X),
		moremath.Max(b.BottomRight.Y, pt.Y),
	)
	return b
}

// Contains returns true if a given point is inside the box, edges included.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.TopLeft.X && pt.X <= b.BottomRight.X &&
		pt.Y >= b.TopLeft.Y && pt.Y <= b.BottomRight.Y
}

// Add returns a copy of the box with the given point added to the corners.
func (b Box) Add(pt Point) Box {
	b.TopLeft = b.TopLeft.Add(pt)
	b.BottomRight = b.BottomRight.Add(pt)
	return b
}
