package stat

import (
	"fmt"
	"math"

	"statsmc/errs"
)

// CHB is the Chernoff-Hoeffding bound estimator.
//
// It computes a fixed sample size N at init from Hoeffding's inequality and
// decides as soon as the tally reaches it. A multi-threaded driver checks
// the bound only at barriers, so the final n may overshoot N by up to
// W-1, where W is the worker count.
type CHB struct {
	specText string
	delta, c float64

	n uint64 // the Chernoff-Hoeffding bound

	status    Status
	samples   uint64
	successes uint64
	estimate  float64
}

// NewCHB validates delta and c and computes the C-H bound N.
func NewCHB(specText string, delta, c float64) (*CHB, error) {
	if delta <= 0 || delta >= 0.5 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < delta < 0.5"}
	}
	if c <= 0 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have c > 0"}
	}
	n := uint64(math.Ceil(1 / (2 * delta * delta) * math.Log(1/(1-c))))
	return &CHB{specText: specText, delta: delta, c: c, n: n}, nil
}

// Bound returns the Chernoff-Hoeffding sample size N computed at init.
func (p *CHB) Bound() uint64 {
	return p.n
}

func (p *CHB) Observe(n, x uint64) {
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

func (p *CHB) Done() bool      { return p.status != NotDone }
func (p *CHB) Status() Status  { return p.status }

func (p *CHB) Report() string {
	return fmt.Sprintf("%s: estimate = %v, successes = %d, samples = %d, C-H bound = %d",
		p.specText, p.estimate, p.successes, p.samples, p.n)
}
