package stat

import "testing"

func TestBFTAcceptsNullOnStrongEvidence(t *testing.T) {
	// Strong evidence that p > theta should accept the null hypothesis.
	p, err := NewBFT("BFT 0.5 100 1 1", 0.5, 100, 1, 1)
	if err != nil {
		t.Fatalf("NewBFT: unexpected error: %v", err)
	}

	p.Observe(10, 9)
	if !p.Done() {
		t.Fatalf("expected a decision at n=10, x=9")
	}
	if p.Status() != DoneNull {
		t.Errorf("Status() = %v, want DoneNull", p.Status())
	}
}

func TestBFTAcceptsAltOnOpposingEvidence(t *testing.T) {
	p, err := NewBFT("BFT 0.5 100 1 1", 0.5, 100, 1, 1)
	if err != nil {
		t.Fatalf("NewBFT: unexpected error: %v", err)
	}

	p.Observe(10, 1)
	if !p.Done() || p.Status() != DoneAlt {
		t.Errorf("Status() = %v, want DoneAlt", p.Status())
	}
}

func TestBFTIdempotentAfterDone(t *testing.T) {
	p, _ := NewBFT("BFT 0.5 100 1 1", 0.5, 100, 1, 1)
	p.Observe(10, 9)
	if !p.Done() {
		t.Fatalf("expected done")
	}
	p.Observe(1000, 1)
	if p.samples != 10 || p.successes != 9 {
		t.Errorf("Observe after Done mutated state: samples=%d successes=%d", p.samples, p.successes)
	}
}

func TestBFTRejectsBadParams(t *testing.T) {
	cases := []struct{ theta, T, alpha, beta float64 }{
		{0.5, 1, 1, 1},
		{0, 100, 1, 1},
		{1, 100, 1, 1},
		{0.5, 100, 0, 1},
		{0.5, 100, 1, 0},
	}
	for _, c := range cases {
		if _, err := NewBFT("BFT", c.theta, c.T, c.alpha, c.beta); err == nil {
			t.Errorf("NewBFT(%+v): expected error", c)
		}
	}
}
