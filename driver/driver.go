// Package driver implements the parallel sampling loop: it spawns the
// fixed pool of workers, performs per-round barrier aggregation, drives
// the statistical procedures, and decides when the run is over.
package driver

import (
	"io"
	"os"
	"runtime"

	"statsmc/stat"
	"statsmc/trial"
)

// Sampler draws one parameter assignment per call. It is the collaborator
// that turns a probabilistic model's random variables into a concrete,
// deterministic instantiation.
type Sampler interface {
	Sample() ([]string, error)
}

// Evaluator invokes the oracle for a cache-missed assignment, on behalf
// of the given worker ID.
type Evaluator interface {
	Evaluate(workerID int, assignment []string) (trial.Verdict, error)
}

// ParallelDriver runs the round/barrier protocol over a fixed pool of W
// workers until every configured procedure is done.
type ParallelDriver struct {
	workers int
	out     io.Writer
	debug   io.Writer

	cache   *trial.Cache
	eval    Evaluator
	sampler Sampler
	procs   []stat.StatProc
}

// New constructs a ParallelDriver from its collaborators and procedures.
// See WorkersOption, OutputOption, and DebugOption for configuration.
func New(cache *trial.Cache, eval Evaluator, sampler Sampler, procs []stat.StatProc, opts ...Option) *ParallelDriver {
	d := &ParallelDriver{
		workers: runtime.GOMAXPROCS(0),
		out:     os.Stdout,
		cache:   cache,
		eval:    eval,
		sampler: sampler,
		procs:   procs,
	}

	for _, opt := range opts {
		switch t := opt.(type) {
		case WorkersOption:
			d.workers = t.N
		case OutputOption:
			d.out = t.W
		case DebugOption:
			d.debug = t.W
		}
	}

	return d
}

// Workers returns the configured worker pool size.
func (d *ParallelDriver) Workers() int {
	return d.workers
}
