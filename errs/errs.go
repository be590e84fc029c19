// Package errs defines the error kinds produced by the statistical model
// checking core. All are fatal: the CLI reports them to stderr and exits
// non-zero, there is no retry path.
package errs

import "fmt"

// BadCli indicates the CLI was invoked with the wrong number of arguments.
var BadCli = fmt.Errorf("statsmc: wrong number of arguments")

// UnknownKeyword indicates a test-spec line used a keyword that does not
// name one of the seven known procedures.
type UnknownKeyword struct {
	Line string
}

func (e *UnknownKeyword) Error() string {
	return fmt.Sprintf("unknown test keyword in spec line: %q", e.Line)
}

// BadSpec indicates a procedure's parameters failed validation at init.
type BadSpec struct {
	Line   string
	Reason string
}

func (e *BadSpec) Error() string {
	return fmt.Sprintf("%s: %s", e.Line, e.Reason)
}

// CannotOpenFile indicates the test-spec file, model file, or an oracle
// output file could not be opened.
type CannotOpenFile struct {
	Path string
	Err  error
}

func (e *CannotOpenFile) Error() string {
	return fmt.Sprintf("cannot open file %q: %v", e.Path, e.Err)
}

func (e *CannotOpenFile) Unwrap() error {
	return e.Err
}

// OracleFailed indicates the oracle subprocess exited abnormally, or no
// output file could be located for it.
type OracleFailed struct {
	Command string
	Reason  string
	Err     error
}

func (e *OracleFailed) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oracle invocation %q failed: %s: %v", e.Command, e.Reason, e.Err)
	}
	return fmt.Sprintf("oracle invocation %q failed: %s", e.Command, e.Reason)
}

func (e *OracleFailed) Unwrap() error {
	return e.Err
}

// OracleNondeterministic indicates the trial cache observed two conflicting
// verdicts for the same parameter assignment. The oracle is assumed
// deterministic, so every assignment should have exactly one verdict; two
// different verdicts means that assumption has been violated and the
// Bernoulli stream can no longer be trusted.
type OracleNondeterministic struct {
	Assignment []string
	First      bool
	Second     bool
}

func (e *OracleNondeterministic) Error() string {
	return fmt.Sprintf("oracle returned conflicting verdicts for assignment %v: first=%v second=%v", e.Assignment, e.First, e.Second)
}
