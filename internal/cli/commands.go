package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/borkshop/quadrant/internal/buildinfo"
	"github.com/borkshop/quadrant/internal/config"
	"github.com/borkshop/quadrant/internal/input"
	"github.com/borkshop/quadrant/internal/plot"
	"github.com/borkshop/quadrant/internal/point"
	"github.com/borkshop/quadrant/internal/report"
)

func (a *app) num(f float64) string {
	return report.FormatFloat(f, a.cfg.Precision)
}

func classifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify X Y",
		Short: "Print the quadrant of a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := input.ParsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			q := pt.Quadrant()
			a.log.Debug("point.classified",
				zap.Float64("x", pt.X), zap.Float64("y", pt.Y), zap.Stringer("quadrant", q))
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func distanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance X Y",
		Short: "Print the distance of a point from the origin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := input.ParsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.num(pt.Distance()))
			return nil
		},
	}
}

func translateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "translate X Y DX DY",
		Short: "Print a point moved by an offset",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := input.ParseCoords(args...)
			if err != nil {
				return err
			}
			pt := point.Pt(fs[0], fs[1]).Translate(fs[2], fs[3])
			fmt.Fprintf(cmd.OutOrStdout(), "(%s, %s)\n", a.num(pt.X), a.num(pt.Y))
			return nil
		},
	}
}

func describeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe X Y",
		Short: "Print a point, its distance from the origin, and its quadrant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := input.ParsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, pt)
			fmt.Fprintf(out, "quadrant: %v\n", pt.Quadrant())
			return nil
		},
	}
}

func batchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Classify every point listed in a YAML file",
		Long: `Reads a YAML sequence of points, each either a mapping or a pair:

  - {x: 1, y: 2}
  - [-3, 4.5]

and prints every point's distance and quadrant, the number of points in each
quadrant, and the bounds of the finite points.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := input.LoadPoints(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("batch.loaded", zap.String("path", args[0]), zap.Int("points", len(pts)))

			r := report.Build(pts)
			if skipped := len(pts) - countFinite(pts); skipped > 0 {
				a.log.Warn("batch.nonfinite",
					zap.String("path", args[0]), zap.Int("skipped_from_bounds", skipped))
			}
			return r.Render(cmd.OutOrStdout(), a.cfg.Format, a.cfg.Precision)
		},
	}
	cmd.Flags().StringVarP(&a.format, "format", "f", config.FormatText, "output format: text or yaml")
	return cmd
}

func plotCmd(a *app) *cobra.Command {
	opts := plot.Options{Cols: 40, Rows: 12}
	var noAxes bool

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Draw the points listed in a YAML file as braille",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := input.LoadPoints(args[0])
			if err != nil {
				return err
			}
			opts.Axes = !noAxes
			lines, err := plot.Render(pts, opts)
			if err != nil {
				return err
			}
			a.log.Debug("plot.rendered",
				zap.String("path", args[0]), zap.Int("points", len(pts)),
				zap.Int("cols", opts.Cols), zap.Int("rows", opts.Rows))

			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Cols, "cols", opts.Cols, "plot width in text cells")
	cmd.Flags().IntVar(&opts.Rows, "rows", opts.Rows, "plot height in text cells")
	cmd.Flags().BoolVar(&noAxes, "no-axes", false, "don't draw the axes")
	return cmd
}

func countFinite(pts []point.Point) int {
	n := 0
	for _, pt := range pts {
		if input.IsFinite(pt) {
			n++
		}
	}
	return n
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
