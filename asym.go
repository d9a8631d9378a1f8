package hotelling

import "github.com/pkg/errors"

// The two-player game admits player-specific cost coefficients. After
// sorting, c1 binds to the player with the lower anchor and c2 to the
// higher, matching the reputation ordering of the profile.

// BuildCandidateAsym is BuildCandidate for the two-player game with
// per-player cost coefficients.
func BuildCandidateAsym(r Profile, c1, c2 float64) (Candidate, error) {
	if err := validateAsym(r, c1, c2); err != nil {
		return nil, err
	}
	return buildCandidate(r, Delta(c1), Delta(c2))
}

// IsEquilibriumAsym is IsEquilibrium for the two-player game with
// per-player cost coefficients.
func IsEquilibriumAsym(r Profile, x Candidate, c1, c2 float64) (Verdict, error) {
	if err := validateAsym(r, c1, c2); err != nil {
		return NoEquilibrium, err
	}
	if err := validateCandidate(r, x); err != nil {
		return NoEquilibrium, err
	}
	return verify(r, x, pairCost(c1, c2)), nil
}

// EvaluateAsym builds and verifies the candidate of the asymmetric
// two-player game.
func EvaluateAsym(r Profile, c1, c2 float64) (Verdict, error) {
	x, err := BuildCandidateAsym(r, c1, c2)
	if err != nil {
		return NoEquilibrium, err
	}
	return IsEquilibriumAsym(r, x, c1, c2)
}

func pairCost(c1, c2 float64) costFn {
	return func(player int) float64 {
		if player == 0 {
			return c1
		}
		return c2
	}
}

func validateAsym(r Profile, c1, c2 float64) error {
	if len(r) != minPlayers {
		return errors.Errorf("asymmetric costs are defined for %d players, got %d", minPlayers, len(r))
	}
	if c1 <= 0 || c2 <= 0 {
		return errors.Errorf("cost coefficients must be strictly positive, got %v and %v", c1, c2)
	}
	return r.validate()
}
