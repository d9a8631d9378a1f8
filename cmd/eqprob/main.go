// Estimate the probability that a random reputation profile admits an
// equilibrium, at a single cost coefficient or across the full sweep grid.
package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/mlaurent/hotelling/figure"
	"github.com/mlaurent/hotelling/montecarlo"
)

func main() {
	numDraws := flag.Int("num_draws", 10000, "Number of profiles to draw per cost coefficient")
	numPlayers := flag.Int("num_players", 5, "Number of players")
	c := flag.Float64("c", 0, "Cost coefficient; 0 sweeps the full grid")
	workers := flag.Int("workers", 0, "Parallel workers (0 = all CPUs)")
	seed := flag.Int64("seed", 1234, "Random seed")
	output := flag.String("output", "eqprob.png", "Output figure for sweeps")
	samplesOut := flag.String("samples_out", "", "Optional gob.gz dump of evaluated draws (single coefficient only)")
	flag.Parse()

	if *c > 0 {
		e := &montecarlo.Estimator{NumPlayers: *numPlayers, Cost: *c, Workers: *workers}
		res, err := e.Run(*numDraws, *seed)
		if err != nil {
			glog.Fatal(err)
		}
		glog.Infof("c = %v: %d of %d draws in equilibrium (p = %.4f)",
			*c, res.Equilibria, res.Draws, res.Probability())

		if *samplesOut != "" {
			records, err := e.Collect(*numDraws, *seed)
			if err != nil {
				glog.Fatal(err)
			}
			if err := montecarlo.SaveRecords(*samplesOut, records); err != nil {
				glog.Fatal(err)
			}
			glog.Infof("Wrote %d records to %v", len(records), *samplesOut)
		}
		return
	}

	glog.Infof("Sweeping cost grid with %d players, %d draws per coefficient", *numPlayers, *numDraws)
	points, err := montecarlo.Sweep(*numDraws, *numPlayers, *seed)
	if err != nil {
		glog.Fatal(err)
	}
	if err := figure.ProbabilityCurve(points, *output); err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Wrote %v", *output)
}
