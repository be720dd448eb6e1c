package interpreter

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/prismview/pyhost/internal/pystr"
	"github.com/prismview/pyhost/log"
)

// Initialize starts the embedded runtime if it is not running and performs
// the one-time process setup on the first successful call ever: thread
// setup, stream redirection, module search path discovery, replay of paths
// registered before startup, and the Enter notification.
//
// installSignalHandlers is forwarded to the runtime's startup routine; the
// platform's default interrupt handling is restored afterward either way,
// so the host's own interrupt behavior applies.
//
// Returns true only on the call that performed the one-time setup; every
// other call is an idempotent no-op returning false.
func (c *Context) Initialize(installSignalHandlers bool) bool {
	if !c.runtime.Initialized() {
		// Guide the runtime's standard-library discovery, if possible.
		c.setupRuntimeHome()

		if err := c.runtime.Start(installSignalHandlers); err != nil {
			c.output.DisplayErrorText(fmt.Sprintf("prismview: failed to start the interpreter runtime: %v\n", err))
			return false
		}

		// Put the default interrupt handling back; the runtime's startup
		// may have installed its own.
		signal.Reset(os.Interrupt)
	}

	if c.initializedOnce {
		return false
	}
	c.initializedOnce = true

	// EnableThreads releases the execution lock once threading is confirmed
	// where the runtime build supports it.
	c.runtime.EnableThreads()

	// Running an empty script first flushes a harmless startup artifact
	// that would otherwise surface as a spurious error notification. The
	// streams are still the real console at this point, so nothing is
	// captured.
	c.RunString("")

	lock := c.runtime.ExecLock()
	lock.Lock()
	c.bindStreams()
	lock.Unlock()

	c.setupModuleSearchPaths()

	// Replay paths registered before startup, in registration order. Each
	// prepends, so the front of the live search path ends up in reverse
	// registration order.
	for _, dir := range c.pendingPaths {
		c.prependLivePath(dir)
	}

	c.notify(Event{Kind: EventEnter})
	return true
}

// Finalize notifies observers of the Exit event and shuts the runtime down.
// No-op when the runtime is not running. Initialize after Finalize is
// unsupported: the runtime restarts, but the one-time setup never re-runs.
func (c *Context) Finalize() {
	if !c.runtime.Initialized() {
		return
	}
	c.notify(Event{Kind: EventExit})
	c.runtime.ExecLock().Lock()
	// Shutdown releases the execution lock itself; no unlock here.
	c.runtime.Shutdown()
}

// SetProgramName decodes name to the runtime's native form and registers
// it. The decoded storage is retained for the rest of the process, as the
// embedding API requires. A name that cannot be decoded prints a diagnostic
// to standard error and an empty placeholder is substituted; execution
// continues degraded.
func (c *Context) SetProgramName(name string) {
	native, err := pystr.Decode(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal prismpython error: unable to decode the program name\n")
		native = pystr.Empty()
	}
	c.programNames = append(c.programNames, native)
	c.runtime.SetProgramName(native)
}

// PrependPythonPath requests dir as a module search path. The path is
// recorded for the lifetime of the process; if the runtime is already
// started it is also prepended to the live search path immediately.
func (c *Context) PrependPythonPath(dir string) {
	if dir == "" {
		return
	}
	out := normalizeSeparators(dir)
	c.pendingPaths = append(c.pendingPaths, out)

	if !c.runtime.Initialized() {
		return
	}
	c.prependLivePath(out)
}

// RunString executes a chunk of source text and returns the runtime's
// native status code. Output produced during the run is buffered and
// delivered afterward as one display call plus one notification per stream,
// errors first.
func (c *Context) RunString(script string) int {
	c.Initialize(true)
	c.consoleBuffering = true

	// The embedded runtime cannot tolerate DOS line endings.
	buffer := strings.ReplaceAll(script, "\r", "")

	var status int
	{
		lock := c.runtime.ExecLock()
		lock.Lock()
		status = c.runtime.Eval(buffer)
		lock.Unlock()
	}

	c.consoleBuffering = false
	if txt := c.stderrBuffer.String(); txt != "" {
		c.output.DisplayErrorText(txt)
		c.notify(Event{Kind: EventError, Text: txt})
		c.stderrBuffer.Reset()
	}
	if txt := c.stdoutBuffer.String(); txt != "" {
		c.output.DisplayText(txt)
		c.notify(Event{Kind: EventSetOutput, Text: txt})
		c.stdoutBuffer.Reset()
	}
	return status
}

// RunMain runs the runtime's own command-line entry point with args and
// returns its exit code. -v and -vv set the diagnostics verbosity and pass
// through; --enable-bt enables a stack trace on fatal errors and is
// stripped; -V prints the host version and passes through so the runtime
// prints its own version and exits. An argument that cannot be decoded is
// fatal: a diagnostic is printed and 1 is returned with no partial
// execution.
func (c *Context) RunMain(args []string) int {
	verbosity := 0
	for _, arg := range args {
		if arg == "-v" {
			verbosity++
		}
		if arg == "-vv" {
			verbosity = 2
		}
	}
	log.SetVerbosity(verbosity)

	c.Initialize(true)

	native := make([]pystr.Native, 0, len(args))
	for i, arg := range args {
		if arg == "--enable-bt" {
			debug.SetTraceback("all")
			continue
		}
		if arg == "-V" {
			// Print the host version and let the argument pass through; the
			// runtime prints its own version and exits.
			fmt.Println(SourceVersion())
		}
		decoded, err := pystr.Decode(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal prismpython error: unable to decode the command line argument #%d\n", i+1)
			return 1
		}
		native = append(native, decoded)
	}

	lock := c.runtime.ExecLock()
	lock.Lock()
	defer lock.Unlock()
	return c.runtime.Main(native)
}
