package montecarlo

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/mlaurent/hotelling"
)

// Pair is a two-player reputation draw that admitted an equilibrium. The
// coordinates are kept in draw order, not sorted.
type Pair struct {
	R1, R2 float64
}

// SampleRegion draws numDraws two-player profiles uniformly from the unit
// square and keeps the (r1, r2) pairs that admit an equilibrium at cost c.
func SampleRegion(numDraws int, c float64, seed int64) ([]Pair, error) {
	if c <= 0 {
		return nil, errors.Errorf("cost coefficient must be strictly positive, got %v", c)
	}
	return sampleRegion(numDraws, seed, func(r hotelling.Profile) (hotelling.Verdict, error) {
		return hotelling.Evaluate(r, c)
	})
}

// SampleRegionAsym is SampleRegion with player-specific cost coefficients;
// c1 binds to the lower reputation of each draw and c2 to the higher.
func SampleRegionAsym(numDraws int, c1, c2 float64, seed int64) ([]Pair, error) {
	if c1 <= 0 || c2 <= 0 {
		return nil, errors.Errorf("cost coefficients must be strictly positive, got %v and %v", c1, c2)
	}
	return sampleRegion(numDraws, seed, func(r hotelling.Profile) (hotelling.Verdict, error) {
		return hotelling.EvaluateAsym(r, c1, c2)
	})
}

func sampleRegion(numDraws int, seed int64, eval func(hotelling.Profile) (hotelling.Verdict, error)) ([]Pair, error) {
	if numDraws <= 0 {
		return nil, errors.Errorf("number of draws must be positive, got %d", numDraws)
	}

	rng := rand.New(rand.NewSource(seed))
	var pairs []Pair
	for i := 0; i < numDraws; i++ {
		r1, r2 := rng.Float64(), rng.Float64()
		r, err := hotelling.NewProfile([]float64{r1, r2})
		if err != nil {
			return nil, err
		}
		verdict, err := eval(r)
		if err != nil {
			return nil, err
		}
		if verdict == hotelling.Equilibrium {
			pairs = append(pairs, Pair{R1: r1, R2: r2})
		}
	}
	return pairs, nil
}
