package ports

import (
	"sync"

	"github.com/prismview/pyhost/internal/pystr"
)

// Runtime models the embedding surface of the interpreter runtime.
// Infrastructure adapters implement this to provide a concrete interpreter.
//
// The runtime owns a single global execution lock serializing all access to
// interpreter state. Every method that touches interpreter state must be
// called with the lock held unless noted otherwise.
type Runtime interface {
	// Initialized reports whether the runtime is currently started.
	Initialized() bool

	// Start boots the runtime. installSignalHandlers controls whether the
	// runtime installs its own interrupt-signal handling during startup.
	// Callers do not need to hold the execution lock.
	Start(installSignalHandlers bool) error

	// Shutdown stops the runtime and frees its resources.
	// Contract: the caller must hold the execution lock WITHOUT a deferred
	// unlock; Shutdown releases the lock itself as part of tearing down.
	Shutdown()

	// EnableThreads sets up full thread support where the runtime build
	// provides it, releasing the execution lock once threading is confirmed
	// enabled. Runtimes without thread support implement this as a no-op.
	EnableThreads()

	// Home returns the runtime's home directory override, or "" when the
	// user has not configured one.
	Home() string

	// ProgramName returns the currently registered program name.
	ProgramName() pystr.Native

	// SetProgramName registers the program name used by the runtime's
	// standard-library discovery heuristic. The backing storage of name
	// must remain alive for the rest of the process.
	SetProgramName(name pystr.Native)

	// PrependPath inserts dir at the front of the module search path.
	// Callers must hold the execution lock.
	PrependPath(dir string)

	// Eval executes a chunk of source text and returns the runtime's native
	// status code (0 on success). Callers must hold the execution lock.
	Eval(script string) int

	// Main runs the runtime's own command-line entry point and returns its
	// exit code. Callers must hold the execution lock.
	Main(args []pystr.Native) int

	// BindStreams replaces the runtime's stdout, stderr and stdin with the
	// supplied adapters; stdin and stdout share the out adapter. Ownership
	// of the adapters transfers to the runtime. Callers must hold the
	// execution lock.
	BindStreams(out, err StreamAdapter)

	// ExecLock returns the global execution lock.
	ExecLock() sync.Locker
}
