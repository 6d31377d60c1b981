// Package report classifies a batch of points and renders the result.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/borkshop/quadrant/internal/config"
	"github.com/borkshop/quadrant/internal/input"
	"github.com/borkshop/quadrant/internal/point"
)

// ErrUnknownFormat is returned by Render for a format it doesn't know.
var ErrUnknownFormat = errors.New("unknown report format")

// Entry is one classified point.
type Entry struct {
	X        float64        `yaml:"x"`
	Y        float64        `yaml:"y"`
	Distance float64        `yaml:"distance"`
	Quadrant point.Quadrant `yaml:"quadrant"`
}

// Count is the number of points that fell in a quadrant.
type Count struct {
	Quadrant point.Quadrant `yaml:"quadrant"`
	N        int            `yaml:"n"`
}

// Bounds is the extent of the finite points in a batch.
type Bounds struct {
	Min point.Point `yaml:"min"`
	Max point.Point `yaml:"max"`
}

// Report summarizes a batch of points.
type Report struct {
	Points []Entry `yaml:"points"`
	Counts []Count `yaml:"counts"`
	Bounds *Bounds `yaml:"bounds,omitempty"`
}

// Build classifies every point. Counts lists every classifiable quadrant, in
// order, even those with no points. Bounds is nil when no point is finite.
func Build(pts []point.Point) Report {
	var r Report
	r.Points = make([]Entry, len(pts))
	counts := make(map[point.Quadrant]int, len(point.Quadrants()))
	finite := make([]point.Point, 0, len(pts))
	for i, pt := range pts {
		q := point.Classify(pt)
		r.Points[i] = Entry{X: pt.X, Y: pt.Y, Distance: pt.Distance(), Quadrant: q}
		counts[q]++
		if input.IsFinite(pt) {
			finite = append(finite, pt)
		}
	}
	for _, q := range point.Quadrants() {
		r.Counts = append(r.Counts, Count{Quadrant: q, N: counts[q]})
	}
	if box, ok := point.Bound(finite...); ok {
		r.Bounds = &Bounds{Min: box.TopLeft, Max: box.BottomRight}
	}
	return r
}

// Render writes the report in the given format. Precision applies to text
// output only; config.ShortestPrecision selects round-trip formatting.
func (r Report) Render(w io.Writer, format string, precision int) error {
	switch format {
	case config.FormatText:
		return r.renderText(w, precision)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode report")
		}
		return errors.Wrap(enc.Close(), "encode report")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

func (r Report) renderText(w io.Writer, precision int) error {
	f := func(v float64) string { return FormatFloat(v, precision) }

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "X\tY\tDISTANCE\tQUADRANT")
	for _, e := range r.Points {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", f(e.X), f(e.Y), f(e.Distance), e.Quadrant)
	}
	fmt.Fprintln(tw)
	for _, c := range r.Counts {
		fmt.Fprintf(tw, "%v\t%d\n", c.Quadrant, c.N)
	}
	fmt.Fprintln(tw)
	if r.Bounds != nil {
		fmt.Fprintf(tw, "bounds\t(%s, %s)\t(%s, %s)\n",
			f(r.Bounds.Min.X), f(r.Bounds.Min.Y), f(r.Bounds.Max.X), f(r.Bounds.Max.Y))
	} else {
		fmt.Fprintln(tw, "bounds\tnone")
	}
	return errors.Wrap(tw.Flush(), "write report")
}

// FormatFloat renders v with a fixed number of decimal places, or in the
// shortest round-trip form when precision is config.ShortestPrecision.
func FormatFloat(v float64, precision int) string {
	if precision == config.ShortestPrecision {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
