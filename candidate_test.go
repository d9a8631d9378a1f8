package hotelling

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func candidatesEqual(x, expected Candidate) bool {
	if len(x) != len(expected) {
		return false
	}
	for i := range x {
		if !almostEqual(x[i], expected[i]) {
			return false
		}
	}
	return true
}

func TestBuildCandidateTwoPlayersSeparated(t *testing.T) {
	x, err := BuildCandidate(Profile{0, 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !candidatesEqual(x, Candidate{0.25, 0.75}) {
		t.Errorf("got candidate %v, expected [0.25 0.75]", x)
	}
}

func TestBuildCandidateTwoPlayersClustered(t *testing.T) {
	x, err := BuildCandidate(Profile{0.5, 0.5}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !candidatesEqual(x, Candidate{0.5, 0.5}) {
		t.Errorf("got candidate %v, expected both players at 0.5", x)
	}
}

func TestBuildCandidateInteriorAtAnchors(t *testing.T) {
	r := Profile{0.05, 0.3, 0.5, 0.7, 0.95}
	x, err := BuildCandidate(r, 2)
	if err != nil {
		t.Fatal(err)
	}
	// delta = 0.125: peripheral players move inward, interiors stay put.
	if !candidatesEqual(x, Candidate{0.175, 0.3, 0.5, 0.7, 0.825}) {
		t.Errorf("got candidate %v", x)
	}
}

func TestBuildCandidateLeftCluster(t *testing.T) {
	r := Profile{0.1, 0.15, 0.5, 0.6, 0.95}
	x, err := BuildCandidate(r, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !candidatesEqual(x, Candidate{0.5 / 3, 0.5 / 3, 0.5, 0.6, 0.7}) {
		t.Errorf("got candidate %v", x)
	}
	if x[0] != x[1] {
		t.Errorf("left pair not clustered: %v != %v", x[0], x[1])
	}
}

func TestBuildCandidateRightCluster(t *testing.T) {
	r := Profile{0.05, 0.4, 0.5, 0.85, 0.9}
	x, err := BuildCandidate(r, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !candidatesEqual(x, Candidate{0.3, 0.4, 0.5, 2.5 / 3, 2.5 / 3}) {
		t.Errorf("got candidate %v", x)
	}
}

func TestBuildCandidateThreePlayersLeftCluster(t *testing.T) {
	// The right peripheral position resolves first, so the cluster
	// balances against it rather than against the raw anchor.
	r := Profile{0.1, 0.12, 0.9}
	x, err := BuildCandidate(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !candidatesEqual(x, Candidate{0.8375 / 3, 0.8375 / 3, 0.8375}) {
		t.Errorf("got candidate %v", x)
	}
}

func TestBuildCandidateThreePlayerCollapse(t *testing.T) {
	if _, err := BuildCandidate(Profile{0.4, 0.5, 0.6}, 1); err != ErrNoCandidate {
		t.Errorf("got error %v, expected ErrNoCandidate", err)
	}
}

func TestBuildCandidateFourPlayerDoubleCluster(t *testing.T) {
	x, err := BuildCandidate(Profile{0.05, 0.2, 0.8, 0.95}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !candidatesEqual(x, Candidate{0.25, 0.25, 0.75, 0.75}) {
		t.Errorf("got candidate %v, expected the quartile configuration", x)
	}
}

func TestBuildCandidateMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 1000; trial++ {
		n := 2 + rng.Intn(7)
		reputations := make([]float64, n)
		for i := range reputations {
			reputations[i] = rng.Float64()
		}
		r, err := NewProfile(reputations)
		if err != nil {
			t.Fatal(err)
		}
		c := 0.1 + 5*rng.Float64()

		x, err := BuildCandidate(r, c)
		if err == ErrNoCandidate {
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(x); i++ {
			if x[i] < x[i-1] {
				t.Fatalf("candidate %v for profile %v (c = %v) is not monotone", x, r, c)
			}
		}
	}
}

func TestBuildCandidateIdempotent(t *testing.T) {
	r := Profile{0.1, 0.15, 0.5, 0.6, 0.95}
	x1, err := BuildCandidate(r, 1)
	if err != nil {
		t.Fatal(err)
	}
	x2, err := BuildCandidate(r, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(x1, x2) {
		t.Errorf("identical inputs gave %v and %v", x1, x2)
	}
}

func TestBuildCandidateInvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		r    Profile
		c    float64
	}{
		{"zero cost", Profile{0.2, 0.8}, 0},
		{"negative cost", Profile{0.2, 0.8}, -1},
		{"unsorted profile", Profile{0.9, 0.1}, 1},
		{"reputation below range", Profile{-0.1, 0.5}, 1},
		{"reputation above range", Profile{0.5, 1.1}, 1},
		{"single player", Profile{0.5}, 1},
	}

	for _, tc := range cases {
		if _, err := BuildCandidate(tc.r, tc.c); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestNewProfileSorts(t *testing.T) {
	r, err := NewProfile([]float64{0.9, 0.1, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(r, Profile{0.1, 0.5, 0.9}) {
		t.Errorf("got profile %v", r)
	}
	if r.NumPlayers() != 3 {
		t.Errorf("got %d players, expected 3", r.NumPlayers())
	}
}
