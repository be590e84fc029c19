package driver

import "io"

// Option configures a ParallelDriver. Mirrors the marker-interface
// functional-options idiom of config.SimulatorOption/config.RunnerOpt.
type Option interface {
	driverOpt()
}

// WorkersOption sets the fixed number of parallel workers W. Dynamic
// resizing mid-run is not supported. Default is runtime.GOMAXPROCS(0).
type WorkersOption struct{ N int }

func (WorkersOption) driverOpt() {}

// OutputOption sets where finished-procedure reports are written.
// Default is os.Stdout.
type OutputOption struct{ W io.Writer }

func (OutputOption) driverOpt() {}

// DebugOption sets where cache-hit short-circuit messages are written.
// nil (the default) silences them.
type DebugOption struct{ W io.Writer }

func (DebugOption) driverOpt() {}
