package wazero

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"github.com/prismview/pyhost/domain/ports"
	"github.com/prismview/pyhost/internal/pystr"
)

// interpreterArgv0 is the argv[0] the WASM interpreter expects.
const interpreterArgv0 = "python"

// pathListSeparator separates entries inside the guest's search-path
// environment variables. The guest sees a WASI filesystem regardless of the
// host platform.
const pathListSeparator = ":"

// Runtime implements ports.Runtime over a WASM interpreter build executed
// under wazero.
type Runtime struct {
	// mu is the global execution lock of the embedded runtime.
	mu sync.Mutex

	binary   []byte
	mountDir string
	home     string
	ctx      context.Context

	programName pystr.Native

	// paths is the live module search path, front first.
	paths []string

	out, errs ports.StreamAdapter

	rt          wazero.Runtime
	compiled    wazero.CompiledModule
	initialized bool
}

// Option configures the Runtime.
type Option func(*Runtime)

// WithModuleBinary supplies the interpreter runtime module (a WASM binary).
func WithModuleBinary(binary []byte) Option {
	return func(r *Runtime) {
		r.binary = binary
	}
}

// WithMountDir exposes a host directory to the interpreter as its root
// filesystem.
func WithMountDir(dir string) Option {
	return func(r *Runtime) {
		r.mountDir = dir
	}
}

// WithHome sets the runtime home directory override. Empty defers to the
// PYTHONHOME environment variable.
func WithHome(home string) Option {
	return func(r *Runtime) {
		r.home = home
	}
}

// WithContext sets the context governing module execution (default:
// context.Background()).
func WithContext(ctx context.Context) Option {
	return func(r *Runtime) {
		r.ctx = ctx
	}
}

// New creates a Runtime with the given options. The runtime does nothing
// until Start.
func New(opts ...Option) *Runtime {
	r := &Runtime{ctx: context.Background()}
	for _, opt := range opts {
		opt(r)
	}
	if n, err := pystr.Decode(interpreterArgv0); err == nil {
		r.programName = n
	}
	return r
}

// Initialized reports whether Start has completed.
func (r *Runtime) Initialized() bool {
	return r.initialized
}

// Start compiles the interpreter module. installSignalHandlers is accepted
// for contract parity; the WASM runtime installs no process-level handlers
// of its own.
func (r *Runtime) Start(installSignalHandlers bool) error {
	_ = installSignalHandlers
	if r.initialized {
		return nil
	}
	if len(r.binary) == 0 {
		return errors.New("wazero: no interpreter module binary configured")
	}

	rt := wazero.NewRuntime(r.ctx)
	wasi_snapshot_preview1.MustInstantiate(r.ctx, rt)

	compiled, err := rt.CompileModule(r.ctx, r.binary)
	if err != nil {
		rt.Close(r.ctx)
		return fmt.Errorf("wazero: compile interpreter module: %w", err)
	}

	r.rt = rt
	r.compiled = compiled
	r.initialized = true
	return nil
}

// Shutdown closes the wazero runtime, invalidating the compiled module.
// Contract: the caller holds the execution lock; Shutdown releases it.
func (r *Runtime) Shutdown() {
	defer r.mu.Unlock()
	if !r.initialized {
		return
	}
	r.rt.Close(r.ctx)
	r.rt = nil
	r.compiled = nil
	r.initialized = false
}

// EnableThreads is a no-op: executions are serialized through the execution
// lock, so there is no thread state to set up.
func (r *Runtime) EnableThreads() {}

// Home returns the configured home override, falling back to PYTHONHOME.
func (r *Runtime) Home() string {
	if r.home != "" {
		return r.home
	}
	return os.Getenv("PYTHONHOME")
}

// ProgramName returns the registered program name.
func (r *Runtime) ProgramName() pystr.Native {
	return r.programName
}

// SetProgramName registers the program name.
func (r *Runtime) SetProgramName(name pystr.Native) {
	r.programName = name
}

// PrependPath inserts dir at the front of the module search path. Callers
// hold the execution lock.
func (r *Runtime) PrependPath(dir string) {
	r.paths = append([]string{dir}, r.paths...)
}

// Paths returns the live module search path, front first.
func (r *Runtime) Paths() []string {
	return r.paths
}

// BindStreams registers the stream adapters used for subsequent executions.
// Callers hold the execution lock.
func (r *Runtime) BindStreams(out, errs ports.StreamAdapter) {
	r.out = out
	r.errs = errs
}

// ExecLock returns the global execution lock.
func (r *Runtime) ExecLock() sync.Locker {
	return &r.mu
}

// Eval executes a chunk of source text through the interpreter's -c entry.
func (r *Runtime) Eval(script string) int {
	return r.run([]string{interpreterArgv0, "-c", script})
}

// Main runs the interpreter's own command-line entry point.
func (r *Runtime) Main(args []pystr.Native) int {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, interpreterArgv0)
	for _, a := range args {
		argv = append(argv, pystr.Encode(a))
	}
	return r.run(argv)
}

// run instantiates the compiled module once with the given argv and returns
// its exit code.
func (r *Runtime) run(argv []string) int {
	if !r.initialized {
		return 1
	}

	cfg := r.moduleConfig(argv)
	mod, err := r.rt.InstantiateModule(r.ctx, r.compiled, cfg)
	if mod != nil {
		mod.Close(r.ctx)
	}
	if err != nil {
		var exitErr *sys.ExitError
		if errors.As(err, &exitErr) {
			return int(exitErr.ExitCode())
		}
		// Traps and instantiation failures surface like a fatal
		// interpreter error on stderr.
		r.writeErr(err.Error() + "\n")
		return 1
	}
	return 0
}

// moduleConfig builds the per-execution module configuration: argv, stdio
// bound to the stream adapters, and the search-path environment.
func (r *Runtime) moduleConfig(argv []string) wazero.ModuleConfig {
	cfg := wazero.NewModuleConfig().
		WithName("").
		WithArgs(argv...).
		WithStdout(&adapterWriter{adapter: r.out, fallback: os.Stdout}).
		WithStderr(&adapterWriter{adapter: r.errs, fallback: os.Stderr}).
		WithStdin(&adapterReader{adapter: r.out})

	if home := r.Home(); home != "" {
		cfg = cfg.WithEnv("PYTHONHOME", home)
	}
	if len(r.paths) > 0 {
		cfg = cfg.WithEnv("PYTHONPATH", strings.Join(r.paths, pathListSeparator))
	}
	if r.mountDir != "" {
		cfg = cfg.WithFSConfig(wazero.NewFSConfig().WithDirMount(r.mountDir, "/"))
	}
	return cfg
}

func (r *Runtime) writeErr(text string) {
	if r.errs.Write != nil {
		r.errs.Write(text)
		return
	}
	fmt.Fprint(os.Stderr, text)
}
