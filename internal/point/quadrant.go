package point

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Quadrant classifies a point by the signs of its coordinates.
type Quadrant uint8

// Quadrant values; Unknown is the zero value and is never produced by
// Classify.
const (
	Unknown Quadrant = iota
	Origin
	One
	Two
	Three
	Four
	OnBorder
)

// ErrUnknownQuadrant is returned when parsing a name that doesn't match any
// Quadrant.
var ErrUnknownQuadrant = errors.New("unknown quadrant")

var quadrantNames = [...]string{
	Unknown:  "Unknown",
	Origin:   "Origin",
	One:      "One",
	Two:      "Two",
	Three:    "Three",
	Four:     "Four",
	OnBorder: "OnBorder",
}

// Classify returns the quadrant of a point. The first matching rule wins:
// the origin, then quadrants One through Four counter-clockwise from the
// positive X axis, and finally OnBorder for everything left over: points
// lying on exactly one axis, and points with a NaN component.
func Classify(pt Point) Quadrant {
	x, y := pt.XY()
	switch {
	case x == 0 && y == 0:
		return Origin
	case x > 0 && y > 0:
		return One
	case x < 0 && y > 0:
		return Two
	case x < 0 && y < 0:
		return Three
	case x > 0 && y < 0:
		return Four
	default:
		return OnBorder
	}
}

// Quadrants returns every value Classify may return, in order.
func Quadrants() []Quadrant {
	return []Quadrant{Origin, One, Two, Three, Four, OnBorder}
}

func (q Quadrant) String() string {
	if int(q) < len(quadrantNames) {
		return quadrantNames[q]
	}
	return "Quadrant(" + strconv.Itoa(int(q)) + ")"
}

// ParseQuadrant returns the quadrant with the given name, ignoring case.
func ParseQuadrant(s string) (Quadrant, error) {
	for q, name := range quadrantNames {
		if strings.EqualFold(s, name) {
			return Quadrant(q), nil
		}
	}
	return Unknown, errors.Wrapf(ErrUnknownQuadrant, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (q Quadrant) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quadrant) UnmarshalText(text []byte) error {
	v, err := ParseQuadrant(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}
