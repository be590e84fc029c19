package stat

import (
	"fmt"

	"gonum.org/v1/gonum/mathext"

	"statsmc/errs"
)

// BFT is the Bayes-factor test with a Beta(alpha, beta) prior. It
// computes the Bayes factor B = P(data|H0)/P(data|H1), scaled by the
// prior odds, and decides once B crosses T or 1/T.
type BFT struct {
	specText    string
	theta       float64
	t           float64
	alpha, beta float64

	priorOdds float64

	status    Status
	samples   uint64
	successes uint64
}

// NewBFT validates parameters, computes the prior odds, and constructs the
// procedure.
func NewBFT(specText string, theta, t, alpha, beta float64) (*BFT, error) {
	if t <= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have T > 1"}
	}
	if theta <= 0 || theta >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < theta < 1"}
	}
	if alpha <= 0 || beta <= 0 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have alpha, beta > 0"}
	}

	p1 := mathext.RegIncBeta(alpha, beta, theta)
	if p1 <= 0 || p1 >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "Prob(H1) is either 0 or 1"}
	}

	return &BFT{
		specText:  specText,
		theta:     theta,
		t:         t,
		alpha:     alpha,
		beta:      beta,
		priorOdds: p1 / (1 - p1),
	}, nil
}

func (p *BFT) Observe(n, x uint64) {
	if p.status != NotDone {
		return
	}

	a := float64(x) + p.alpha
	b := float64(n) - float64(x) + p.beta
	bayesFactor := p.priorOdds * (1/mathext.RegIncBeta(a, b, p.theta) - 1)

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

func (p *BFT) Done() bool     { return p.status != NotDone }
func (p *BFT) Status() Status { return p.status }

func (p *BFT) Report() string {
	return fmt.Sprintf("%s: %s, successes = %d, samples = %d",
		p.specText, hypothesisLabel(p.status), p.successes, p.samples)
}
