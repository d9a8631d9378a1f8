// Plot the set of two-player reputation pairs that admit an equilibrium,
// optionally with player-specific cost coefficients.
package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/mlaurent/hotelling/figure"
	"github.com/mlaurent/hotelling/montecarlo"
)

func main() {
	numDraws := flag.Int("num_draws", 100000, "Number of (r1, r2) pairs to draw")
	c := flag.Float64("c", 1, "Cost coefficient shared by both players")
	c1 := flag.Float64("c1", 0, "Lower-reputation player cost coefficient (asymmetric variant, set with -c2)")
	c2 := flag.Float64("c2", 0, "Higher-reputation player cost coefficient (asymmetric variant, set with -c1)")
	seed := flag.Int64("seed", 1234, "Random seed")
	output := flag.String("output", "eqregion.png", "Output figure")
	flag.Parse()

	var pairs []montecarlo.Pair
	var err error
	if *c1 > 0 || *c2 > 0 {
		pairs, err = montecarlo.SampleRegionAsym(*numDraws, *c1, *c2, *seed)
	} else {
		pairs, err = montecarlo.SampleRegion(*numDraws, *c, *seed)
	}
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("%d of %d draws in equilibrium", len(pairs), *numDraws)

	if err := figure.ReputationRegion(pairs, *output); err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Wrote %v", *output)
}
