package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geopoint/internal/geom"
	"geopoint/internal/tui"
)

// runRender resolves the point source (file, inline WKT, or x/y flags) and
// writes one projection line per point.
func runRender(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	wkt, _ := cmd.Flags().GetString("wkt")

	switch {
	case len(args) == 1:
		set, err := tui.LoadPath(args[0])
		if err != nil {
			return err
		}
		logger.Debug("loaded point file", zap.String("path", args[0]), zap.Int("points", set.Len()))
		for _, p := range set.Points {
			if err := p.Render(out); err != nil {
				return err
			}
		}
	case wkt != "":
		set, err := geom.ParseWKT(wkt)
		if err != nil {
			return err
		}
		for _, p := range set.Points {
			if err := p.Render(out); err != nil {
				return err
			}
		}
	default:
		// x/y flags; a flag not supplied stays unset
		x, y := geom.Unset(), geom.Unset()
		if cmd.Flags().Changed("x") {
			v, _ := cmd.Flags().GetFloat64("x")
			x = geom.C(v)
		}
		if cmd.Flags().Changed("y") {
			v, _ := cmd.Flags().GetFloat64("y")
			y = geom.C(v)
		}
		if err := geom.Partial(x, y).Render(out); err != nil {
			return err
		}
	}
	return nil
}

// runDistance prints the distance between two argument points, or the
// consecutive pairwise distances of a file given with --from.
func runDistance(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	from, _ := cmd.Flags().GetString("from")

	if from != "" {
		set, err := tui.LoadPath(from)
		if err != nil {
			return err
		}
		if set.Len() < 2 {
			return errors.New("distance: need at least two points")
		}
		logger.Debug("loaded point file", zap.String("path", from), zap.Int("points", set.Len()))
		for i := 1; i < set.Len(); i++ {
			d, err := set.Points[i-1].DistanceTo(set.Points[i])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s -> %s: %s\n", set.Points[i-1], set.Points[i], fmtDist(d))
		}
		fmt.Fprintf(out, "total: %s\n", fmtDist(set.TotalPath()))
		return nil
	}

	if len(args) != 4 {
		return errors.New("distance: expected x1 y1 x2 y2 or --from file")
	}
	vals := make([]float64, 4)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("distance: bad coordinate %q: %w", a, err)
		}
		vals[i] = v
	}
	p := geom.New(vals[0], vals[1])
	q := geom.New(vals[2], vals[3])
	d, err := p.DistanceTo(q)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, fmtDist(d))
	return nil
}

func fmtDist(d float64) string {
	return strconv.FormatFloat(d, 'f', cfg.Precision, 64)
}
