// Package figure renders scatter figures from equilibrium experiments.
package figure

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mlaurent/hotelling/montecarlo"
)

// ProbabilityCurve renders (c, probability) sweep points as a scatter plot
// and saves it to path. The output format follows the file extension.
func ProbabilityCurve(points []montecarlo.Point, path string) error {
	p := plot.New()
	p.X.Label.Text = "c"
	p.Y.Label.Text = "Probability of equilibrium"
	p.Y.Min, p.Y.Max = 0, 1

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.C
		xys[i].Y = pt.Probability
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "building scatter")
	}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)

	return errors.Wrapf(p.Save(6*vg.Inch, 4*vg.Inch, path), "saving %v", path)
}

// ReputationRegion renders the (r1, r2) pairs that admit an equilibrium.
func ReputationRegion(pairs []montecarlo.Pair, path string) error {
	p := plot.New()
	p.X.Label.Text = "r1"
	p.Y.Label.Text = "r2"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	xys := make(plotter.XYs, len(pairs))
	for i, pr := range pairs {
		xys[i].X = pr.R1
		xys[i].Y = pr.R2
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "building scatter")
	}
	s.GlyphStyle.Radius = vg.Points(1)
	p.Add(s)

	return errors.Wrapf(p.Save(5*vg.Inch, 5*vg.Inch, path), "saving %v", path)
}
