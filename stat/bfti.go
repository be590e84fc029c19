package stat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"statsmc/errs"
)

// BFTI is the Bayes-factor test with an indifference region around theta.
// theta1 = max(0, theta-delta) and theta2 = min(1, theta+delta) replace
// theta as the hypothesis boundaries; specs whose indifference region
// touches 0 or 1 are rejected at init.
type BFTI struct {
	specText       string
	t              float64
	alpha, beta    float64
	theta1, theta2 float64

	priorOdds float64

	status    Status
	samples   uint64
	successes uint64
}

// NewBFTI validates parameters, derives theta1/theta2 and the prior odds,
// and constructs the procedure.
func NewBFTI(specText string, theta, t, alpha, beta, delta float64) (*BFTI, error) {
	if t <= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have T > 1"}
	}
	if theta <= 0 || theta >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < theta < 1"}
	}
	if alpha <= 0 || beta <= 0 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have alpha, beta > 0"}
	}
	if delta <= 0 || delta >= 0.5 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < delta < 0.5"}
	}

	theta1 := math.Max(0, theta-delta)
	theta2 := math.Min(1, theta+delta)
	if theta1 <= 0 || theta2 >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "indifference region borders 0 or 1"}
	}

	p1 := mathext.RegIncBeta(alpha, beta, theta1)
	if p1 <= 0 || p1 >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "Prob(H1) is either 0 or 1"}
	}

	return &BFTI{
		specText:  specText,
		t:         t,
		alpha:     alpha,
		beta:      beta,
		theta1:    theta1,
		theta2:    theta2,
		priorOdds: p1 / (1 - p1),
	}, nil
}

func (p *BFTI) Observe(n, x uint64) {
	if p.status != NotDone {
		return
	}

	a := float64(x) + p.alpha
	b := float64(n) - float64(x) + p.beta
	bayesFactor := p.priorOdds * (1 - mathext.RegIncBeta(a, b, p.theta2)) / mathext.RegIncBeta(a, b, p.theta1)

	switch {
	case bayesFactor > p.t:
		p.status = DoneNull
	case bayesFactor < 1/p.t:
		p.status = DoneAlt
	default:
		return
	}
	p.samples = n
	p.successes = x
}

func (p *BFTI) Done() bool     { return p.status != NotDone }
func (p *BFTI) Status() Status { return p.status }

func (p *BFTI) Report() string {
	return fmt.Sprintf("%s: %s, successes = %d, samples = %d",
		p.specText, hypothesisLabel(p.status), p.successes, p.samples)
}
