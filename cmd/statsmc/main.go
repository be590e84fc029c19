// Command statsmc answers statistical questions about probabilistic
// hybrid automata by sequential Monte Carlo: it samples the random
// parameters of a probabilistic model, hands each instantiation to an
// external SMT-reachability oracle, and feeds the resulting stream of
// Bernoulli outcomes into one or more sequential statistical procedures
// until all of them have decided.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"statsmc/driver"
	"statsmc/errs"
	"statsmc/oracle"
	"statsmc/sample"
	"statsmc/spec"
	"statsmc/trial"
)

const usage = `Usage: statsmc <testfile> <prob-model-file> <oracle> <k-unfolding-depth> <precision>

where:
  <testfile>          a text file containing test specifications, one per line
  <prob-model-file>   the probabilistic extension of the deterministic model:
                       "RV <name> uniform <lo> <hi>" or
                       "RV <name> discrete <v1> <v2> ..." lines declare the
                       sampled parameters, every other line is template text
                       with {{name}} placeholders
  <oracle>             path to the SMT-reachability oracle executable
  <k-unfolding-depth>  maximum number of discrete transitions to unfold
  <precision>          delta precision passed to the oracle

Available test specifications:

Hypothesis tests:
  Lai's test:                                 LAI  <theta> <cost per sample>
  Bayes Factor test:                          BFT  <theta> <threshold T> <alpha> <beta>
  Sequential Probability Ratio Test:          SPRT <theta> <threshold T> <indifference region delta>
  Bayes Factor test with indifference region: BFTI <theta> <threshold T> <alpha> <beta> <indifference region delta>

Estimation methods:
  Chernoff-Hoeffding bound: CHB <delta> <coverage probability>
  Bayesian estimation:      BEST <delta> <coverage probability> <alpha> <beta>

Sampling method:
  Naive sampling: NSAM <#samples>

Empty lines and lines beginning with '#' are ignored.
`

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if err == errs.BadCli {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 6 {
		return errs.BadCli
	}

	testFile, modelFile, oraclePath := args[1], args[2], args[3]

	k, err := strconv.Atoi(args[4])
	if err != nil {
		return &errs.BadSpec{Line: args[4], Reason: "unfolding depth must be an integer"}
	}
	precision, err := strconv.ParseFloat(args[5], 64)
	if err != nil {
		return &errs.BadSpec{Line: args[5], Reason: "precision must be numeric"}
	}

	procs, err := spec.Load(testFile)
	if err != nil {
		return err
	}
	if len(procs) == 0 {
		fmt.Println("No test requested - exiting.")
		return nil
	}

	workDir := filepath.Dir(modelFile)
	sampler, writer, err := sample.LoadModel(modelFile, time.Now().UnixNano(), workDir)
	if err != nil {
		return err
	}

	oracleRunner := oracle.NewRunner(oracle.Config{
		OraclePath: oraclePath,
		MaxDepth:   k,
		Precision:  precision,
	}, writer)

	cache := trial.NewCache()

	fmt.Printf("statsmc: this is the parallel sequential testing core. running %d procedures with %d workers available.\n",
		len(procs), runtime.GOMAXPROCS(0))

	d := driver.New(cache, oracleRunner, sampler, procs)
	if err := d.Run(); err != nil {
		return err
	}

	fmt.Printf("statsmc: done. %d distinct assignments cached, %d workers used.\n", cache.Len(), d.Workers())
	return nil
}
