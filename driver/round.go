package driver

import (
	"fmt"

	"statsmc/trial"
)

// roundResult is one worker's contribution at a round's barrier.
type roundResult struct {
	workerID int
	verdict  trial.Verdict
	err      error
}

// Run executes rounds until every procedure is done or a worker reports a
// fatal error. It blocks until termination and returns the first error
// encountered, if any.
func (d *ParallelDriver) Run() error {
	nextRound := make(chan bool)
	result := make(chan roundResult)
	closing := make(chan bool)

	for w := 0; w < d.workers; w++ {
		go d.runWorker(w, nextRound, result, closing)
	}

	for i := 0; i < d.workers; i++ {
		nextRound <- true
	}

	return d.mainLoop(nextRound, result, closing)
}

// runWorker is the sample phase: draw an assignment, consult the cache,
// call the oracle on a miss, and report the round's verdict on result.
// It runs once per round, blocking on nextRound between rounds, until
// nextRound is closed by the aggregator.
func (d *ParallelDriver) runWorker(id int, nextRound <-chan bool, result chan<- roundResult, closing chan<- bool) {
	for range nextRound {
		verdict, err := d.sampleOnce(id)
		result <- roundResult{workerID: id, verdict: verdict, err: err}
	}
	closing <- true
}

// sampleOnce draws one assignment and resolves its verdict, consulting
// the cache before calling the oracle. The cache is authoritative: a hit
// is never re-checked against the oracle.
func (d *ParallelDriver) sampleOnce(id int) (trial.Verdict, error) {
	assignment, err := d.sampler.Sample()
	if err != nil {
		return trial.Unsat, fmt.Errorf("driver: worker %d sampling: %w", id, err)
	}

	if verdict, hit := d.cache.Lookup(assignment); hit {
		if d.debug != nil {
			fmt.Fprintf(d.debug, "worker %d: no need to call the oracle, %s\n", id, verdictLabel(verdict))
		}
		return verdict, nil
	}

	verdict, err := d.eval.Evaluate(id, assignment)
	if err != nil {
		return trial.Unsat, err
	}
	if err := d.cache.Insert(assignment, verdict); err != nil {
		return trial.Unsat, err
	}
	return verdict, nil
}

func verdictLabel(v trial.Verdict) string {
	if v == trial.Sat {
		return "sat"
	}
	return "unsat"
}

// mainLoop is the aggregate phase plus barrier bookkeeping. It runs on a
// single goroutine: samplesTotal, successesTotal, and every procedure's
// state are touched only here, so no locking is needed beyond the
// barrier itself.
func (d *ParallelDriver) mainLoop(nextRound chan bool, result <-chan roundResult, closing <-chan bool) error {
	var samplesTotal, successesTotal uint64

	stopped := false
	stop := func() {
		if !stopped {
			stopped = true
			close(nextRound)
		}
	}

	ongoing := d.workers

	for {
		var firstErr error
		roundSuccesses := 0

		// Barrier: wait for all W workers to report this round's verdict,
		// even if one of them failed. A round is never cancelled partway
		// through.
		for i := 0; i < d.workers; i++ {
			r := <-result
			if r.err != nil {
				if firstErr == nil {
					firstErr = r.err
				}
				continue
			}
			if r.verdict == trial.Sat {
				roundSuccesses++
			}
		}

		if firstErr != nil {
			stop()
			d.drain(ongoing, closing)
			return firstErr
		}

		samplesTotal += uint64(d.workers)
		successesTotal += uint64(roundSuccesses)

		allDone := true
		for _, p := range d.procs {
			if !p.Done() {
				p.Observe(samplesTotal, successesTotal)
				if p.Done() {
					fmt.Fprintln(d.out, p.Report())
				}
			}
			allDone = allDone && p.Done()
		}

		if allDone {
			stop()
			break
		}

		for i := 0; i < d.workers; i++ {
			nextRound <- true
		}
	}

	d.drain(ongoing, closing)
	return nil
}

// drain waits for every still-running worker to acknowledge shutdown
// after nextRound has been closed.
func (d *ParallelDriver) drain(ongoing int, closing <-chan bool) {
	for ongoing > 0 {
		<-closing
		ongoing--
	}
}
