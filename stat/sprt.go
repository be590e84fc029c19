package stat

import (
	"fmt"
	"math"

	"statsmc/errs"
)

// SPRT is Wald's Sequential Probability Ratio Test, specialized to the
// indifference region (theta1, theta2) built from theta and delta.
type SPRT struct {
	specText       string
	theta1, theta2 float64
	tau            float64 // ln(T)

	status    Status
	samples   uint64
	successes uint64
}

// NewSPRT validates parameters, derives theta1/theta2, and constructs the
// procedure.
func NewSPRT(specText string, theta, t, delta float64) (*SPRT, error) {
	if t <= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have T > 1"}
	}
	if theta <= 0 || theta >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < theta < 1"}
	}
	if delta <= 0 || delta >= 0.5 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < delta < 0.5"}
	}

	theta1 := math.Max(0, theta-delta)
	theta2 := math.Min(1, theta+delta)
	if theta1 <= 0 || theta2 >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "indifference region borders 0 or 1"}
	}

	return &SPRT{
		specText: specText,
		theta1:   theta1,
		theta2:   theta2,
		tau:      math.Log(t),
	}, nil
}

func (p *SPRT) Observe(n, x uint64) {
	if p.status != NotDone {
		return
	}

	xf, nf := float64(x), float64(n)
	r := xf*math.Log(p.theta2/p.theta1) + (nf-xf)*math.Log((1-p.theta2)/(1-p.theta1))

	switch {
	case r > p.tau:
		p.status = DoneNull
	case r < -p.tau:
		p.status = DoneAlt
	default:
		return
	}
	p.samples = n
	p.successes = x
}

func (p *SPRT) Done() bool     { return p.status != NotDone }
func (p *SPRT) Status() Status { return p.status }

func (p *SPRT) Report() string {
	return fmt.Sprintf("%s: %s, successes = %d, samples = %d",
		p.specText, hypothesisLabel(p.status), p.successes, p.samples)
}
