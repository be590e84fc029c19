package stat

import "testing"

func TestNSAMDecidesAtN(t *testing.T) {
	p, err := NewNSAM("NSAM 50", 50)
	if err != nil {
		t.Fatalf("NewNSAM: unexpected error: %v", err)
	}

	p.Observe(49, 10)
	if p.Done() {
		t.Fatalf("done before reaching N")
	}

	p.Observe(50, 11)
	if !p.Done() || p.Status() != DoneEstimate {
		t.Fatalf("expected DoneEstimate at n = N, got status %v", p.Status())
	}
	if got, want := p.estimate, 11.0/50.0; got != want {
		t.Errorf("estimate = %v, want %v", got, want)
	}
}

func TestNSAMRejectsZero(t *testing.T) {
	if _, err := NewNSAM("NSAM 0", 0); err == nil {
		t.Errorf("NewNSAM(0): expected error")
	}
}
