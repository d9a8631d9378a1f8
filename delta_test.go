package hotelling

import "testing"

func TestDelta(t *testing.T) {
	cases := []struct {
		c, expected float64
	}{
		{0.5, 0.5},
		{1, 0.25},
		{2, 0.125},
		{4, 0.0625},
		{10, 0.025},
	}

	for _, tc := range cases {
		if d := Delta(tc.c); d != tc.expected {
			t.Errorf("Delta(%v) = %v, expected %v", tc.c, d, tc.expected)
		}
	}
}

func TestDeltaStrictlyDecreasing(t *testing.T) {
	prev := Delta(0.1)
	for c := 0.2; c < 20; c += 0.1 {
		d := Delta(c)
		if d >= prev {
			t.Errorf("Delta(%v) = %v, not less than %v", c, d, prev)
		}
		prev = d
	}
}
