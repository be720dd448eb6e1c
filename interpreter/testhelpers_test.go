package interpreter

import (
	"errors"
	"sync"

	"github.com/prismview/pyhost/domain/ports"
	"github.com/prismview/pyhost/internal/pystr"
)

// fakeRuntime records every call the lifecycle manager makes against the
// runtime port.
type fakeRuntime struct {
	mu sync.Mutex

	initialized bool
	failStart   bool

	startCalls     int
	startSignals   []bool
	shutdowns      int
	threadsEnabled int

	home        string
	programName pystr.Native

	// paths holds the live module search path, front first.
	paths []string

	evalScripts []string
	evalFn      func(script string) int

	mainCalls int
	mainSeen  []string
	mainCode  int

	bindCalls int
	out, errs ports.StreamAdapter
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{programName: mustDecode(defaultProgramName)}
}

func mustDecode(s string) pystr.Native {
	n, err := pystr.Decode(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (f *fakeRuntime) Initialized() bool { return f.initialized }

func (f *fakeRuntime) Start(installSignalHandlers bool) error {
	f.startCalls++
	f.startSignals = append(f.startSignals, installSignalHandlers)
	if f.failStart {
		return errors.New("module binary missing")
	}
	f.initialized = true
	return nil
}

func (f *fakeRuntime) Shutdown() {
	defer f.mu.Unlock()
	f.shutdowns++
	f.initialized = false
}

func (f *fakeRuntime) EnableThreads() { f.threadsEnabled++ }

func (f *fakeRuntime) Home() string { return f.home }

func (f *fakeRuntime) ProgramName() pystr.Native { return f.programName }

func (f *fakeRuntime) SetProgramName(name pystr.Native) { f.programName = name }

func (f *fakeRuntime) PrependPath(dir string) {
	f.paths = append([]string{dir}, f.paths...)
}

func (f *fakeRuntime) Eval(script string) int {
	f.evalScripts = append(f.evalScripts, script)
	if f.evalFn != nil {
		return f.evalFn(script)
	}
	return 0
}

func (f *fakeRuntime) Main(args []pystr.Native) int {
	f.mainCalls++
	f.mainSeen = nil
	for _, a := range args {
		f.mainSeen = append(f.mainSeen, pystr.Encode(a))
	}
	return f.mainCode
}

func (f *fakeRuntime) BindStreams(out, errs ports.StreamAdapter) {
	f.bindCalls++
	f.out = out
	f.errs = errs
}

func (f *fakeRuntime) ExecLock() sync.Locker { return &f.mu }

// recordingWindow captures display calls in order.
type recordingWindow struct {
	texts  []string
	errors []string
}

func (w *recordingWindow) DisplayText(text string)      { w.texts = append(w.texts, text) }
func (w *recordingWindow) DisplayErrorText(text string) { w.errors = append(w.errors, text) }

// noLibrary is a locator that never finds anything.
func noLibrary(string) string { return "" }

// newTestContext builds a context around a fake runtime with display and
// library location stubbed out.
func newTestContext(rt *fakeRuntime) (*Context, *recordingWindow) {
	win := &recordingWindow{}
	return NewContext(rt, WithOutputWindow(win), WithLocator(noLibrary)), win
}
