// Package input reads points from command line arguments and YAML documents.
package input

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/borkshop/quadrant/internal/point"
)

// ErrInvalidPoint is wrapped by every error caused by malformed point input.
var ErrInvalidPoint = errors.New("invalid point")

// ParseCoord parses a single coordinate. Anything strconv.ParseFloat accepts
// is allowed, including "NaN" and "Inf".
func ParseCoord(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return 0, errors.Wrapf(ErrInvalidPoint, "coordinate %q out of range", s)
		}
		return 0, errors.Wrapf(ErrInvalidPoint, "coordinate %q is not a number", s)
	}
	return f, nil
}

// ParseCoords parses every argument as a coordinate.
func ParseCoords(args ...string) ([]float64, error) {
	fs := make([]float64, len(args))
	for i, arg := range args {
		f, err := ParseCoord(arg)
		if err != nil {
			return nil, errors.WithMessagef(err, "argument %d", i+1)
		}
		fs[i] = f
	}
	return fs, nil
}

// ParsePoint parses an x and y argument pair into a point.
func ParsePoint(x, y string) (point.Point, error) {
	fs, err := ParseCoords(x, y)
	if err != nil {
		return point.Zero, err
	}
	return point.Pt(fs[0], fs[1]), nil
}

// yamlPoint accepts either a {x: X, y: Y} mapping or an [X, Y] sequence.
type yamlPoint point.Point

func (p *yamlPoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var m struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := node.Decode(&m); err != nil {
			return errors.Wrapf(ErrInvalidPoint, "line %d: %v", node.Line, err)
		}
		if m.X == nil || m.Y == nil {
			return errors.Wrapf(ErrInvalidPoint, "line %d: both x and y are required", node.Line)
		}
		*p = yamlPoint{X: *m.X, Y: *m.Y}
		return nil

	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return errors.Wrapf(ErrInvalidPoint, "line %d: %v", node.Line, err)
		}
		if len(xy) != 2 {
			return errors.Wrapf(ErrInvalidPoint, "line %d: want 2 coordinates, got %d", node.Line, len(xy))
		}
		*p = yamlPoint{X: xy[0], Y: xy[1]}
		return nil

	default:
		return errors.Wrapf(ErrInvalidPoint, "line %d: want a mapping or a sequence", node.Line)
	}
}

// ReadPoints decodes a YAML sequence of points. An empty document yields no
// points and no error.
func ReadPoints(r io.Reader) ([]point.Point, error) {
	var raw []yamlPoint
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if errors.Is(err, ErrInvalidPoint) {
			return nil, err
		}
		return nil, errors.Wrap(ErrInvalidPoint, err.Error())
	}
	pts := make([]point.Point, len(raw))
	for i, p := range raw {
		pts[i] = point.Point(p)
	}
	return pts, nil
}

// LoadPoints reads points from the named YAML file.
func LoadPoints(path string) ([]point.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open points")
	}
	defer f.Close()

	pts, err := ReadPoints(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return pts, nil
}

// IsFinite reports whether both of a point's coordinates are finite.
func IsFinite(pt point.Point) bool {
	return !math.IsNaN(pt.X) && !math.IsInf(pt.X, 0) &&
		!math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0)
}
