package stat

import (
	"math"
	"testing"
)

func TestBESTPosteriorMassExample(t *testing.T) {
	// n=100, x=60, alpha=beta=1, delta=0.1 -> posterior mean ~0.598, mass
	// on [0.498, 0.698] ~0.962.
	a, b := 60.0+1, 100.0-60.0+1
	mean := a / (a + b)
	if math.Abs(mean-0.598) > 0.001 {
		t.Fatalf("sanity check failed, mean = %v", mean)
	}

	p, err := NewBEST("BEST 0.1 0.9 1 1", 0.1, 0.9, 1, 1)
	if err != nil {
		t.Fatalf("NewBEST: unexpected error: %v", err)
	}

	p.Observe(100, 60)
	if !p.Done() {
		t.Fatalf("expected done: mass at c=0.9 should already exceed threshold at n=100,x=60")
	}
	if p.Status() != DoneEstimate {
		t.Errorf("Status() = %v, want DoneEstimate", p.Status())
	}
	if math.Abs(p.estimate-0.598) > 0.001 {
		t.Errorf("estimate = %v, want ~0.598", p.estimate)
	}
}

func TestBESTClipsIntervalNearBoundary(t *testing.T) {
	p, err := NewBEST("BEST 0.2 0.5 1 1", 0.2, 0.5, 1, 1)
	if err != nil {
		t.Fatalf("NewBEST: unexpected error: %v", err)
	}

	// With only failures observed the posterior mean sits near 0, so the
	// naive [mean-delta, mean+delta] interval would dip below 0; Observe
	// must shift rather than crash or shrink it.
	p.Observe(50, 0)
	_ = p.Done()
}

func TestBESTRejectsBadParams(t *testing.T) {
	cases := []struct{ delta, c, alpha, beta float64 }{
		{0, 0.9, 1, 1},
		{0.6, 0.9, 1, 1},
		{0.1, 0, 1, 1},
		{0.1, 0.9, 0, 1},
		{0.1, 0.9, 1, 0},
	}
	for _, c := range cases {
		if _, err := NewBEST("BEST", c.delta, c.c, c.alpha, c.beta); err == nil {
			t.Errorf("NewBEST(%+v): expected error", c)
		}
	}
}
