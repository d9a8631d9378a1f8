// Package montecarlo estimates the probability that a randomly drawn
// reputation profile admits an equilibrium, by evaluating many independent
// uniform draws from [0, 1]^n against the equilibrium engine.
package montecarlo

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/mlaurent/hotelling"
)

// Estimator draws reputation profiles and counts how many admit an
// equilibrium. The zero value is not usable; NumPlayers and Cost must be
// set.
type Estimator struct {
	// NumPlayers is the number of players per draw. Must be at least 2.
	NumPlayers int
	// Cost is the relocation cost coefficient shared by all players.
	Cost float64
	// Fixed pins the first len(Fixed) reputations to preset values; the
	// remaining players are drawn at random each evaluation.
	Fixed []float64
	// Workers bounds parallelism. Zero means one worker per CPU.
	Workers int
}

// Result aggregates the outcome of a run.
type Result struct {
	Draws      int
	Equilibria int
}

// Probability is the fraction of draws that admitted an equilibrium.
func (res Result) Probability() float64 {
	if res.Draws == 0 {
		return 0
	}
	return float64(res.Equilibria) / float64(res.Draws)
}

// Run performs numDraws independent evaluations, split across workers.
// Each worker draws from its own seeded source, so results are
// reproducible for a fixed seed and worker count. The engine itself is
// pure and safe to call from any number of workers.
func (e *Estimator) Run(numDraws int, seed int64) (Result, error) {
	if err := e.validate(); err != nil {
		return Result{}, err
	}
	if numDraws <= 0 {
		return Result{}, errors.Errorf("number of draws must be positive, got %d", numDraws)
	}

	nWorkers := e.Workers
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}
	if nWorkers > numDraws {
		nWorkers = numDraws
	}

	logEvery := int64(numDraws / 10)
	var nEquilibria, nDone int64
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		draws := numDraws / nWorkers
		if w < numDraws%nWorkers {
			draws++
		}

		wg.Add(1)
		go func(w, draws int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			scratch := make([]float64, e.NumPlayers)
			for i := 0; i < draws; i++ {
				if e.drawIsEquilibrium(rng, scratch) {
					atomic.AddInt64(&nEquilibria, 1)
				}
				if n := atomic.AddInt64(&nDone, 1); logEvery > 0 && n%logEvery == 0 {
					glog.V(1).Infof("Evaluated %d of %d draws (%d equilibria)",
						n, numDraws, atomic.LoadInt64(&nEquilibria))
				}
			}
		}(w, draws)
	}
	wg.Wait()

	return Result{Draws: numDraws, Equilibria: int(nEquilibria)}, nil
}

// Collect evaluates numDraws profiles like Run but retains every draw and
// its verdict, for saving with SaveRecords. Draws are sequential; use Run
// for large counts where only the ratio matters.
func (e *Estimator) Collect(numDraws int, seed int64) ([]Record, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	if numDraws <= 0 {
		return nil, errors.Errorf("number of draws must be positive, got %d", numDraws)
	}

	rng := rand.New(rand.NewSource(seed))
	records := make([]Record, 0, numDraws)
	scratch := make([]float64, e.NumPlayers)
	for i := 0; i < numDraws; i++ {
		eq := e.drawIsEquilibrium(rng, scratch)
		reputations := make([]float64, len(scratch))
		copy(reputations, scratch)
		records = append(records, Record{
			Reputations: reputations,
			C:           e.Cost,
			Equilibrium: eq,
		})
	}
	return records, nil
}

// drawIsEquilibrium fills scratch with one reputation draw and evaluates
// it. The drawn values are left in scratch for callers that retain them.
func (e *Estimator) drawIsEquilibrium(rng *rand.Rand, scratch []float64) bool {
	copy(scratch, e.Fixed)
	for i := len(e.Fixed); i < len(scratch); i++ {
		scratch[i] = rng.Float64()
	}

	r, err := hotelling.NewProfile(scratch)
	if err != nil {
		// Draws come from the valid domain and presets are validated
		// up front, so this indicates a bug in the estimator itself.
		glog.Fatalf("invalid draw %v: %v", scratch, err)
	}
	verdict, err := hotelling.Evaluate(r, e.Cost)
	if err != nil {
		glog.Fatalf("evaluating draw %v: %v", scratch, err)
	}
	return verdict == hotelling.Equilibrium
}

func (e *Estimator) validate() error {
	if e.NumPlayers < 2 {
		return errors.Errorf("estimator needs at least 2 players, got %d", e.NumPlayers)
	}
	if e.Cost <= 0 {
		return errors.Errorf("cost coefficient must be strictly positive, got %v", e.Cost)
	}
	if len(e.Fixed) > e.NumPlayers {
		return errors.Errorf("%d preset reputations for %d players", len(e.Fixed), e.NumPlayers)
	}
	for _, ri := range e.Fixed {
		if ri < 0 || ri > 1 {
			return errors.Errorf("preset reputation %v outside [0, 1]", ri)
		}
	}
	return nil
}
