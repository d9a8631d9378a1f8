package hotelling

import "github.com/pkg/errors"

// BuildCandidate maps a sorted reputation profile and cost coefficient to
// the unique equilibrium candidate. Peripheral players locate delta inside
// their own anchor when that keeps them strictly outside their nearest
// interior neighbor; otherwise the two players at that end cluster at a
// shared boundary location. Interior players locate at their own anchor.
//
// BuildCandidate returns ErrNoCandidate when the construction would need
// three players to share a location (only possible for n=3), and an error
// for invalid inputs. The returned candidate is monotone non-decreasing.
func BuildCandidate(r Profile, c float64) (Candidate, error) {
	if err := validateInputs(r, c); err != nil {
		return nil, err
	}
	d := Delta(c)
	return buildCandidate(r, d, d)
}

func validateInputs(r Profile, c float64) error {
	if c <= 0 {
		return errors.Errorf("cost coefficient must be strictly positive, got %v", c)
	}
	return r.validate()
}

// buildCandidate places each player given per-end capture half-widths.
// deltaLeft applies to the leftmost player and deltaRight to the rightmost;
// they differ only in the two-player asymmetric-cost variant.
func buildCandidate(r []float64, deltaLeft, deltaRight float64) (Candidate, error) {
	n := len(r)
	if n == minPlayers {
		return buildCandidate2(r, deltaLeft, deltaRight), nil
	}

	leftTight := r[0]+deltaLeft >= secondFromLeft(r)
	rightTight := r[n-1]-deltaRight <= secondFromRight(r)

	if leftTight && rightTight {
		switch n {
		case 3:
			// Both ends collapsing onto the middle player would form
			// a three-way cluster, for which no candidate exists.
			return nil, ErrNoCandidate
		case 4:
			// Two boundary pairs splitting the space at the quartiles.
			return Candidate{0.25, 0.25, 0.75, 0.75}, nil
		}
	}

	x := make(Candidate, n)
	// Interior players face symmetric competitive pressure from both
	// sides and stay at their own anchor.
	for i := 1; i < n-1; i++ {
		x[i] = r[i]
	}
	if !leftTight {
		x[0] = r[0] + deltaLeft
	}
	if !rightTight {
		x[n-1] = r[n-1] - deltaRight
	}

	// A boundary cluster balances the pair against the position of the
	// next player beyond it, so unclustered positions are resolved first.
	if rightTight {
		pos := (2 + thirdFromRight(x)) / 3
		x[n-2] = pos
		x[n-1] = pos
	}
	if leftTight {
		pos := thirdFromLeft(x) / 3
		x[0] = pos
		x[1] = pos
	}
	return x, nil
}

// buildCandidate2 handles the two-player game, where the only interior
// neighbor of each peripheral player is the other peripheral player.
func buildCandidate2(r []float64, deltaLeft, deltaRight float64) Candidate {
	if r[1]-r[0] < deltaLeft+deltaRight {
		// Too close for either player to stand apart: both share the
		// center of the space.
		return Candidate{0.5, 0.5}
	}
	return Candidate{r[0] + deltaLeft, r[1] - deltaRight}
}
