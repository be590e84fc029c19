package stat

import (
	"fmt"

	"statsmc/errs"
)

// NSAM is naive sampling: decide once n reaches a fixed sample count N,
// reporting the empirical rate as the estimate.
type NSAM struct {
	specText string
	n        uint64

	status    Status
	samples   uint64
	successes uint64
	estimate  float64
}

// NewNSAM validates N and constructs the procedure.
func NewNSAM(specText string, n uint64) (*NSAM, error) {
	if n == 0 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have N > 0"}
	}
	return &NSAM{specText: specText, n: n}, nil
}

func (p *NSAM) Observe(n, x uint64) {
	if p.status != NotDone {
		return
	}
	if n >= p.n {
		p.status = DoneEstimate
		p.samples = n
		p.successes = x
		p.estimate = float64(x) / float64(n)
	}
}

func (p *NSAM) Done() bool     { return p.status != NotDone }
func (p *NSAM) Status() Status { return p.status }

func (p *NSAM) Report() string {
	return fmt.Sprintf("%s: estimate = %v, successes = %d, samples = %d",
		p.specText, p.estimate, p.successes, p.samples)
}
