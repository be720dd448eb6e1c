// Package interpreter manages the process-wide lifecycle of the embedded
// scripting runtime: one-time startup, standard-library path discovery,
// standard-stream redirection into the host's event mechanism, and teardown.
//
// All state lives in a Context. Hosts normally create one Context around a
// concrete runtime adapter, publish it with InitGlobal, and create an
// Interpreter per component that wants lifecycle event callbacks:
//
//	rt := wazero.New(wazero.WithModuleBinary(bin))
//	ctx := interpreter.NewContext(rt)
//	interpreter.InitGlobal(ctx)
//
//	obs := ctx.NewInterpreter(func(e interpreter.Event) { ... })
//	defer obs.Close()
//
//	ctx.RunString("print('hello')")
//	ctx.Finalize()
//
// Startup happens at most once per process lifetime. Calling Initialize
// again after Finalize restarts the runtime but never re-runs the one-time
// setup; that sequence is unsupported.
package interpreter
