// Package oracle drives the external SMT-reachability oracle: it
// instantiates a deterministic model for one worker's sampled assignment,
// invokes the oracle subprocess, and parses the verdict from its
// output-file convention.
package oracle

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"statsmc/errs"
	"statsmc/trial"
)

// ModelWriter instantiates the deterministic model template with a sampled
// assignment for the given worker and returns the path to the written
// file.
type ModelWriter interface {
	Write(workerID int, assignment []string) (modelPath string, err error)
}

// Config holds the parameters fixed at startup for every oracle
// invocation: the unfolding depth k and the numeric precision epsilon.
type Config struct {
	OraclePath string
	MaxDepth   int
	Precision  float64
}

// Runner invokes the oracle synchronously and parses its verdict. One
// Runner is shared read-only across all workers; each call only touches
// the files belonging to the worker ID it is given.
type Runner struct {
	cfg    Config
	writer ModelWriter
}

// NewRunner constructs a Runner.
func NewRunner(cfg Config, writer ModelWriter) *Runner {
	return &Runner{cfg: cfg, writer: writer}
}

// Evaluate instantiates the model for the given worker and assignment,
// invokes the oracle, and returns the parsed verdict. A non-zero exit
// status, an abnormal termination, or a missing output file is reported
// as *errs.OracleFailed and is fatal to the caller.
func (r *Runner) Evaluate(workerID int, assignment []string) (trial.Verdict, error) {
	modelPath, err := r.writer.Write(workerID, assignment)
	if err != nil {
		return trial.Unsat, fmt.Errorf("oracle: instantiating model for worker %d: %w", workerID, err)
	}

	cmd := exec.Command(
		r.cfg.OraclePath,
		"-u", strconv.Itoa(r.cfg.MaxDepth),
		fmt.Sprintf("-precision=%v", r.cfg.Precision),
		modelPath,
	)
	if err := cmd.Run(); err != nil {
		return trial.Unsat, &errs.OracleFailed{
			Command: cmd.String(),
			Reason:  "subprocess terminated abnormally or exited non-zero",
			Err:     err,
		}
	}

	dir := filepath.Dir(modelPath)
	stem := strings.TrimSuffix(filepath.Base(modelPath), filepath.Ext(modelPath))
	return r.readVerdict(dir, stem, cmd.String())
}

// readVerdict finds the largest depth k' <= k for which an i=0 output
// file exists, then within that depth takes the largest path index i.
func (r *Runner) readVerdict(dir, stem, command string) (trial.Verdict, error) {
	depth, err := r.largestExploredDepth(dir, stem)
	if err != nil {
		return trial.Unsat, &errs.OracleFailed{Command: command, Reason: err.Error()}
	}

	outputPath, err := r.largestPathIndex(dir, stem, depth)
	if err != nil {
		return trial.Unsat, &errs.OracleFailed{Command: command, Reason: err.Error()}
	}

	return readFirstLineVerdict(outputPath)
}

// largestExploredDepth finds the largest k' <= k for which
// "<stem>_<k'>_0.output" exists, walking downward.
func (r *Runner) largestExploredDepth(dir, stem string) (int, error) {
	for k := r.cfg.MaxDepth; k >= 0; k-- {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d_0.output", stem, k))
		if _, err := os.Stat(candidate); err == nil {
			return k, nil
		}
	}
	return 0, fmt.Errorf("no output file found for any depth k' <= %d", r.cfg.MaxDepth)
}

// largestPathIndex finds the largest i for which
// "<stem>_<depth>_<i>.output" exists.
func (r *Runner) largestPathIndex(dir, stem string, depth int) (string, error) {
	var last string
	for i := 0; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d_%d.output", stem, depth, i))
		if _, err := os.Stat(candidate); err != nil {
			break
		}
		last = candidate
	}
	if last == "" {
		return "", fmt.Errorf("no path-indexed output file found at depth %d", depth)
	}
	return last, nil
}

// readFirstLineVerdict reads the first line of an oracle output file:
// "unsat" means unsat, anything else (a delta-sat statement) means sat.
func readFirstLineVerdict(path string) (trial.Verdict, error) {
	f, err := os.Open(path)
	if err != nil {
		return trial.Unsat, &errs.CannotOpenFile{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return trial.Unsat, &errs.OracleFailed{Command: path, Reason: "output file is empty"}
	}

	if strings.TrimSpace(scanner.Text()) == "unsat" {
		return trial.Unsat, nil
	}
	return trial.Sat, nil
}
