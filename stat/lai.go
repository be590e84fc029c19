package stat

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	mrand "math/rand"

	"statsmc/errs"
)

// LAI is Lai's sequential test (Lai, "Nearly Optimal Sequential Tests of
// Composite Hypotheses", Annals of Statistics, 1988).
//
// It carries its own pseudo-random generator, seeded from a system entropy
// source at construction, used only to break ties when the empirical rate
// equals theta exactly. The generator is never shared with another
// instance.
type LAI struct {
	specText string
	theta    float64
	cost     float64

	rng *mrand.Rand

	status    Status
	samples   uint64
	successes uint64
}

// NewLAI validates parameters, seeds a private RNG, and constructs the
// procedure.
func NewLAI(specText string, theta, cost float64) (*LAI, error) {
	if theta <= 0 || theta >= 1 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have 0 < theta < 1"}
	}
	if cost <= 0 {
		return nil, &errs.BadSpec{Line: specText, Reason: "must have cost > 0"}
	}

	var seedBytes [8]byte
	if _, err := rand.Read(seedBytes[:]); err != nil {
		return nil, &errs.BadSpec{Line: specText, Reason: "could not seed random generator: " + err.Error()}
	}
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))

	return &LAI{
		specText: specText,
		theta:    theta,
		cost:     cost,
		rng:      mrand.New(mrand.NewSource(seed)),
	}, nil
}

// kullbackLeibler computes K(p || theta), avoiding ln(0) by the piecewise
// definition rather than by clamping.
func kullbackLeibler(p, theta float64) float64 {
	switch {
	case p == 0:
		return math.Log(1 / (1 - theta))
	case p == 1:
		return math.Log(1 / theta)
	default:
		return p*math.Log(p/theta) + (1-p)*math.Log((1-p)/(1-theta))
	}
}

// laiG computes Lai's g(t), the piecewise approximation to the boundary
// function used in the sequential test. The t < 0.01 branch is the whole
// expression, not just its first term.
func laiG(t float64) float64 {
	const pi = math.Pi
	switch {
	case t >= 0.8:
		w := 1 / t
		return (1 / (16 * pi)) * (w*w - (10/(48*pi))*w*w*w*w + math.Pow(5/(48*pi), 2)*math.Pow(w, 6))
	case t >= 0.1:
		return math.Exp(-1.38*t-2) / (2 * t)
	case t >= 0.01:
		return (0.1521 + 0.000225/t - 0.00585/math.Sqrt(t)) / (2 * t)
	default:
		w := 1 / t
		return 0.5 * (2*math.Log(w) + math.Log(math.Log(w)) - math.Log(4*pi) - 3*math.Exp(-0.016*math.Sqrt(w)))
	}
}

func (p *LAI) Observe(n, x uint64) {
	if p.status != NotDone || n == 0 {
		return
	}

	phat := float64(x) / float64(n)
	kl := kullbackLeibler(phat, p.theta)

	t := p.cost * float64(n)
	g := laiG(t)
	threshold := g / float64(n)

	if kl < threshold {
		return
	}

	p.samples = n
	p.successes = x

	switch {
	case phat == p.theta:
		if p.rng.Float64() <= 0.5 {
			p.status = DoneNull
		} else {
			p.status = DoneAlt
		}
	case phat > p.theta:
		p.status = DoneNull
	default:
		p.status = DoneAlt
	}
}

func (p *LAI) Done() bool     { return p.status != NotDone }
func (p *LAI) Status() Status { return p.status }

func (p *LAI) Report() string {
	return fmt.Sprintf("%s: %s, successes = %d, samples = %d",
		p.specText, hypothesisLabel(p.status), p.successes, p.samples)
}

// hypothesisLabel renders a hypothesis-test verdict for the CLI's
// stdout report.
func hypothesisLabel(s Status) string {
	switch s {
	case DoneNull:
		return "Accept Null hypothesis"
	case DoneAlt:
		return "Reject Null hypothesis"
	default:
		return "not done"
	}
}
