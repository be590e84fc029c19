package stat

import (
	"fmt"

	"gonum.org/v1/gonum/mathext"

	"statsmc/errs"
)

// BEST is the Bayesian interval estimator with a Beta(alpha, beta) prior
// (Zuliani, Platzer, Clarke, HSCC 2010). It decides once the posterior
// mass inside the interval [mean-delta, mean+delta] around the posterior
// mean (shifted to stay within [0, 1]) reaches coverage c.
type BEST struct {
	specText    string
	delta, c    float64
	alpha, beta float64

	status    Status
	samples   uint64
	successes uint64
	estimate  float64
}

// NewBEST validates parameters and constructs the procedure.
func NewBEST(specText string, delta, c, alpha, beta float64) (*BEST, error) {
	if delta <= 0 || delta > 0.5 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < delta <= 0.5"}
	}
	if c <= 0 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have c > 0"}
	}
	if alpha <= 0 || beta <= 0 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have alpha, beta > 0"}
	}
	return &BEST{specText: specText, delta: delta, c: c, alpha: alpha, beta: beta}, nil
}

func (p *BEST) Observe(n, x uint64) {
	if p.status != NotDone {
		return
	}

	a := float64(x) + p.alpha
	b := float64(n) - float64(x) + p.beta
	mean := a / (a + b)

	lower, upper := mean-p.delta, mean+p.delta
	if upper > 1 {
		upper, lower = 1, 1-2*p.delta
	}
	if lower < 0 {
		upper, lower = 2*p.delta, 0
	}

	mass := mathext.RegIncBeta(a, b, upper) - mathext.RegIncBeta(a, b, lower)

	if mass >= p.c {
		p.status = DoneEstimate
		p.samples = n
		p.successes = x
		p.estimate = mean
	}
}

func (p *BEST) Done() bool     { return p.status != NotDone }
func (p *BEST) Status() Status { return p.status }

func (p *BEST) Report() string {
	return fmt.Sprintf("%s: estimate = %v, successes = %d, samples = %d",
		p.specText, p.estimate, p.successes, p.samples)
}
