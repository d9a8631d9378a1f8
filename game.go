// Package hotelling implements the equilibrium engine for one-dimensional
// location games with reputation: n players with fixed anchor points in
// [0, 1] choose locations, earning their share of the space minus a
// quadratic relocation cost c * d^2 for standing distance d from their
// anchor. The engine constructs the unique equilibrium candidate for a
// reputation profile and verifies whether any player has a profitable
// unilateral deviation.
package hotelling

import (
	"sort"

	"github.com/pkg/errors"
)

// minPlayers is the smallest game the engine is defined for.
const minPlayers = 2

// Verdict is the outcome of checking the equilibrium candidate.
type Verdict int

const (
	NoEquilibrium Verdict = iota
	Equilibrium
)

var verdictStr = [...]string{
	"NoEquilibrium",
	"Equilibrium",
}

func (v Verdict) String() string {
	return verdictStr[v]
}

// Profile is a reputation profile: each player's fixed anchor point in
// [0, 1], sorted ascending. Player identity is not preserved across
// sorting; the equilibrium candidate is symmetric under relabeling.
type Profile []float64

// NewProfile copies, sorts, and validates the given reputations.
func NewProfile(reputations []float64) (Profile, error) {
	r := make(Profile, len(reputations))
	copy(r, reputations)
	sort.Float64s(r)
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// NumPlayers is the number of players in the game.
func (r Profile) NumPlayers() int {
	return len(r)
}

func (r Profile) validate() error {
	if len(r) < minPlayers {
		return errors.Errorf("profile has %d players, need at least %d", len(r), minPlayers)
	}
	for i, ri := range r {
		if ri < 0 || ri > 1 {
			return errors.Errorf("reputation %d is %v, must lie in [0, 1]", i, ri)
		}
		if i > 0 && ri < r[i-1] {
			return errors.Errorf("profile is not sorted at index %d", i)
		}
	}
	return nil
}

// Candidate is the conjectured equilibrium location profile for a given
// reputation profile and cost coefficient. It is monotone non-decreasing;
// equal adjacent entries are co-located (clustered) players. Candidates are
// only ever produced by BuildCandidate.
type Candidate []float64

var (
	// ErrNoCandidate is returned by BuildCandidate when the construction
	// would require three players to collapse onto a single location,
	// which the pairwise boundary-clustering rules do not cover. The
	// candidate does not exist, so neither does an equilibrium.
	ErrNoCandidate = errors.New("no pairwise-clustered candidate exists")

	// ErrUnsupportedClustering is returned by IsEquilibrium when given a
	// candidate with three or more co-located players. Such candidates
	// are never produced by BuildCandidate and the deviation enumeration
	// cannot reason about them.
	ErrUnsupportedClustering = errors.New("three or more co-located players")
)

// Boundary accessors. The clustering rules reference fixed offsets from each
// end of the sorted vectors; naming them keeps the index arithmetic in one
// place. All require at least 3 entries.
func secondFromLeft(v []float64) float64  { return v[1] }
func thirdFromLeft(v []float64) float64   { return v[2] }
func secondFromRight(v []float64) float64 { return v[len(v)-2] }
func thirdFromRight(v []float64) float64  { return v[len(v)-3] }
