package hotelling

import "github.com/pkg/errors"

// costFn gives the relocation cost coefficient of a given player. All
// players share one coefficient except in the two-player asymmetric
// variant.
type costFn func(player int) float64

func constantCost(c float64) costFn {
	return func(int) float64 { return c }
}

// IsEquilibrium reports whether the candidate x admits no profitable
// unilateral deviation for any player of the game (r, c). The candidate
// must come from BuildCandidate for the same inputs; IsEquilibrium rejects
// ill-formed candidates with an error rather than a verdict.
//
// A deviation is profitable only if it strictly exceeds the player's
// current payoff; exact payoff ties never reject the candidate.
func IsEquilibrium(r Profile, x Candidate, c float64) (Verdict, error) {
	if err := validateInputs(r, c); err != nil {
		return NoEquilibrium, err
	}
	if err := validateCandidate(r, x); err != nil {
		return NoEquilibrium, err
	}
	return verify(r, x, constantCost(c)), nil
}

// Evaluate builds the equilibrium candidate for (r, c) and verifies it.
// A missing candidate (ErrNoCandidate) means no equilibrium.
func Evaluate(r Profile, c float64) (Verdict, error) {
	x, err := BuildCandidate(r, c)
	if err == ErrNoCandidate {
		return NoEquilibrium, nil
	}
	if err != nil {
		return NoEquilibrium, err
	}
	return IsEquilibrium(r, x, c)
}

func validateCandidate(r Profile, x Candidate) error {
	if len(x) != len(r) {
		return errors.Errorf("candidate has %d positions for %d players", len(x), len(r))
	}
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return errors.Errorf("candidate is not monotone at index %d", i)
		}
	}
	for i := 2; i < len(x); i++ {
		if x[i] == x[i-1] && x[i-1] == x[i-2] {
			return ErrUnsupportedClustering
		}
	}
	return nil
}

func verify(r, x []float64, cost costFn) Verdict {
	n := len(r)
	v := &verifier{r: r, x: x, cost: cost}

	if n == minPlayers && x[0] == x[1] {
		return v.centerCluster()
	}
	if n > minPlayers {
		// A clustered pair must sit inside the window that makes
		// sharing the location worthwhile for both members.
		if x[0] == x[1] && !v.leftClusterConsistent() {
			return NoEquilibrium
		}
		if x[n-1] == x[n-2] && !v.rightClusterConsistent() {
			return NoEquilibrium
		}
		if n == 4 && x[0] == x[1] && x[2] == x[3] {
			// Quartile double cluster: each pair is a best response
			// to the other.
			return Equilibrium
		}
	}

	if v.leftmostDeviates() || v.rightmostDeviates() || v.interiorDeviates() {
		return NoEquilibrium
	}
	return Equilibrium
}

// verifier holds one evaluation's inputs while the deviation menus are
// enumerated. It is discarded after the call; nothing is shared.
type verifier struct {
	r    []float64
	x    []float64
	cost costFn
}

// relocationCost is the quadratic cost of standing at pos with the given
// anchor.
func relocationCost(c, pos, anchor float64) float64 {
	d := pos - anchor
	return c * d * d
}

// centerCluster handles the two-player game with both players sharing the
// midpoint of the space: the shared location must be strictly inside both
// players' capture windows.
func (v *verifier) centerCluster() Verdict {
	if v.r[1]-Delta(v.cost(1)) < v.x[0] && v.x[0] < v.r[0]+Delta(v.cost(0)) {
		return Equilibrium
	}
	return NoEquilibrium
}

// leftClusterConsistent checks a shared left-boundary location: it may not
// fall left of the second player's anchor, nor further inside than the
// leftmost player can push.
func (v *verifier) leftClusterConsistent() bool {
	return v.x[0] >= secondFromLeft(v.r) && v.x[0] <= v.r[0]+Delta(v.cost(0))
}

func (v *verifier) rightClusterConsistent() bool {
	n := len(v.x)
	return v.x[n-1] >= v.r[n-1]-Delta(v.cost(n-1)) && v.x[n-1] <= secondFromRight(v.r)
}

// beyondRight is the payoff from relocating just outside the rightmost
// occupied position, capturing everything up to the boundary of the space.
func (v *verifier) beyondRight(p int) float64 {
	n := len(v.x)
	return (1 - v.x[n-1]) - relocationCost(v.cost(p), v.x[n-1], v.r[p])
}

// beyondLeft is the mirror image at the left end of the space.
func (v *verifier) beyondLeft(p int) float64 {
	return v.x[0] - relocationCost(v.cost(p), v.x[0], v.r[p])
}

// gapRight is the payoff from becoming the sole occupant of the gap between
// positions j and j+1. The relocation cost is taken at the gap edge nearest
// the deviating player, which lies to the left of the gap.
func (v *verifier) gapRight(j, p int) float64 {
	return (v.x[j+1]-v.x[j])/2 - relocationCost(v.cost(p), v.x[j], v.r[p])
}

// gapLeft is the payoff from occupying the gap between positions j-1 and j,
// for a deviating player to the right of the gap.
func (v *verifier) gapLeft(j, p int) float64 {
	return (v.x[j]-v.x[j-1])/2 - relocationCost(v.cost(p), v.x[j], v.r[p])
}

// leftmostDeviates checks every structurally distinct relocation of the
// leftmost player (or of both members of a left boundary cluster): jumping
// past the opposite end, or becoming the sole occupant of any gap between
// distinct candidate positions to its right.
func (v *verifier) leftmostDeviates() bool {
	n := len(v.x)
	if v.x[0] != v.x[1] {
		curr := (v.x[0]+v.x[1])/2 - relocationCost(v.cost(0), v.x[0], v.r[0])
		if v.beyondRight(0) > curr {
			return true
		}
		for j := 1; j < n-1; j++ {
			if v.x[j] == v.x[j+1] {
				continue
			}
			if v.gapRight(j, 0) > curr {
				return true
			}
		}
		return false
	}

	// Paired members split the captured interval evenly, so each earns
	// half the single-occupant share. They have distinct anchors and are
	// checked separately.
	for _, p := range [2]int{0, 1} {
		curr := (v.x[0]+thirdFromLeft(v.x))/4 - relocationCost(v.cost(p), v.x[0], v.r[p])
		if v.beyondRight(p) > curr {
			return true
		}
		for j := 2; j < n-1; j++ {
			if v.x[j] == v.x[j+1] {
				continue
			}
			if v.gapRight(j, p) > curr {
				return true
			}
		}
	}
	return false
}

func (v *verifier) rightmostDeviates() bool {
	n := len(v.x)
	if v.x[n-1] != v.x[n-2] {
		curr := 1 - (v.x[n-1]+v.x[n-2])/2 - relocationCost(v.cost(n-1), v.x[n-1], v.r[n-1])
		if v.beyondLeft(n-1) > curr {
			return true
		}
		for j := 1; j < n-1; j++ {
			if v.x[j] == v.x[j-1] {
				continue
			}
			if v.gapLeft(j, n-1) > curr {
				return true
			}
		}
		return false
	}

	for _, p := range [2]int{n - 1, n - 2} {
		curr := 0.5 - (v.x[n-1]+thirdFromRight(v.x))/4 - relocationCost(v.cost(p), v.x[n-1], v.r[p])
		if v.beyondLeft(p) > curr {
			return true
		}
		for j := 1; j < n-2; j++ {
			if v.x[j] == v.x[j-1] {
				continue
			}
			if v.gapLeft(j, p) > curr {
				return true
			}
		}
	}
	return false
}

// interiorDeviates checks every interior player not sharing a location with
// a neighbor. An unpaired interior player sits at its own anchor and pays
// no relocation cost; it earns half the span between its two neighbors.
func (v *verifier) interiorDeviates() bool {
	n := len(v.x)
	for p := 1; p < n-1; p++ {
		if v.x[p-1] == v.x[p] || v.x[p] == v.x[p+1] {
			continue
		}

		curr := (v.x[p+1] - v.x[p-1]) / 2
		if v.beyondLeft(p) > curr || v.beyondRight(p) > curr {
			return true
		}
		for j := 1; j < p; j++ {
			if v.x[j] == v.x[j-1] {
				continue
			}
			if v.gapLeft(j, p) > curr {
				return true
			}
		}
		for j := p + 1; j < n-1; j++ {
			if v.x[j] == v.x[j+1] {
				continue
			}
			if v.gapRight(j, p) > curr {
				return true
			}
		}
	}
	return false
}
