package interpreter

import (
	"strings"
	"sync"

	"github.com/prismview/pyhost/domain/ports"
	"github.com/prismview/pyhost/internal/locate"
	"github.com/prismview/pyhost/internal/pystr"
)

// Context holds the process-wide interpreter state: the runtime port, the
// one-time-initialization flag, pending search paths, the observer registry
// and the console-buffering accumulators.
//
// Pre-startup mutation is assumed single-threaded (host startup); once the
// runtime is started, mutations go through its execution lock.
type Context struct {
	runtime ports.Runtime
	output  ports.OutputWindow
	locate  func(symbol string) string

	// initializedOnce is never reset; the one-time setup runs at most once
	// per process lifetime.
	initializedOnce bool

	// pendingPaths is append-only and preserves registration order.
	pendingPaths []string

	observers []*Interpreter

	consoleBuffering bool
	stdoutBuffer     strings.Builder
	stderrBuffer     strings.Builder

	captureStdin bool

	// programNames retains every decoded program name: the embedding API
	// requires the storage to outlive the process.
	programNames []pystr.Native
}

// Option configures a Context.
type Option func(*Context)

// WithOutputWindow sets the display subsystem receiving interpreter output
// (default: the OS console).
func WithOutputWindow(w ports.OutputWindow) Option {
	return func(c *Context) {
		c.output = w
	}
}

// WithLocator overrides how the library defining a runtime symbol is
// located. Used by tests; the default consults the process's loaded-module
// table.
func WithLocator(fn func(symbol string) string) Option {
	return func(c *Context) {
		c.locate = fn
	}
}

// NewContext creates a Context around the given runtime.
func NewContext(rt ports.Runtime, opts ...Option) *Context {
	c := &Context{
		runtime: rt,
		output:  ConsoleWindow{},
		locate:  locate.ModuleDefining,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Runtime returns the runtime port the context drives.
func (c *Context) Runtime() ports.Runtime {
	return c.runtime
}

// SetCaptureStdin controls whether interpreter stdin reads are routed
// through observer Update events instead of the console.
func (c *Context) SetCaptureStdin(capture bool) {
	c.captureStdin = capture
}

// CaptureStdin reports whether stdin capture is enabled.
func (c *Context) CaptureStdin() bool {
	return c.captureStdin
}

// notify delivers an event to every live observer, in registration order.
func (c *Context) notify(e Event) {
	for _, obs := range c.observers {
		obs.InvokeEvent(e)
	}
}

// Global context registration, for hosts that want one shared context.

var (
	globalContext *Context
	globalOnce    sync.Once
)

// InitGlobal publishes the process-wide context. Safe for concurrent use
// but only the first call has any effect.
func InitGlobal(ctx *Context) {
	globalOnce.Do(func() {
		globalContext = ctx
	})
}

// Global returns the process-wide context, or nil before InitGlobal.
func Global() *Context {
	return globalContext
}

// ResetGlobal clears the process-wide context. Not thread-safe; tests only.
func ResetGlobal() {
	globalOnce = sync.Once{}
	globalContext = nil
}
