package point

import (
	"math"
	"strconv"

	"github.com/borkshop/quadrant/internal/moremath"
)

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{x, y} }

// Point represents a point in <X,Y> 2-space.
type Point struct{ X, Y float64 }

// Zero is the origin, the zero value of Point.
var Zero = Point{}

// XY deconstructs the point into its components.
func (pt Point) XY() (x, y float64) { return pt.X, pt.Y }

// Equal returns true if both this point's X and Y components equal another's.
func (pt Point) Equal(other Point) bool {
	return pt.X == other.X && pt.Y == other.Y
}

// Translate returns a copy of this point moved by dx along X and dy along Y.
func (pt Point) Translate(dx, dy float64) Point {
	pt.X += dx
	pt.Y += dy
	return pt
}

// Add adds another point's values to a copy of this point, returning the copy.
func (pt Point) Add(other Point) Point {
	return pt.Translate(other.X, other.Y)
}

// Sub subtracts another point's values from a copy of this point, returning
// the copy.
func (pt Point) Sub(other Point) Point {
	return pt.Translate(-other.X, -other.Y)
}

// Scale multiplies a copy of this point's values by a constant, returning the
// copy.
func (pt Point) Scale(f float64) Point {
	pt.X *= f
	pt.Y *= f
	return pt
}

// Abs returns a copy of this point with its values non-negative.
func (pt Point) Abs() Point {
	pt.X = math.Abs(pt.X)
	pt.Y = math.Abs(pt.Y)
	return pt
}

// Neg negates a copy of this point, returning the copy.
func (pt Point) Neg() Point {
	pt.X = -pt.X
	pt.Y = -pt.Y
	return pt
}

// Sign returns a copy of this point reduced to the values -1, 0, or 1 depending
// on the sign of the original values.
func (pt Point) Sign() Point {
	pt.X = moremath.Sign(pt.X)
	pt.Y = moremath.Sign(pt.Y)
	return pt
}

// Dot return the dot product of this point with another.
func (pt Point) Dot(other Point) float64 {
	return pt.X*other.X + pt.Y*other.Y
}

// SumSQ returns the sum-of-squared components.
func (pt Point) SumSQ() float64 {
	return pt.X*pt.X + pt.Y*pt.Y
}

// Distance returns the Euclidean distance of this point from the origin.
// It is computed on every call; NaN components yield NaN.
func (pt Point) Distance() float64 {
	return math.Sqrt(pt.SumSQ())
}

// DistanceTo returns the Euclidean distance between this point and another.
func (pt Point) DistanceTo(other Point) float64 {
	return pt.Sub(other).Distance()
}

// Quadrant classifies this point; see Classify.
func (pt Point) Quadrant() Quadrant { return Classify(pt) }

func (pt Point) String() string {
	return "(" + formatFloat(pt.X) + ", " + formatFloat(pt.Y) + ") is " +
		formatFloat(pt.Distance()) + " from the origin"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
