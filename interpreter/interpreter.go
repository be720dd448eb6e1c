package interpreter

// Interpreter is one host component's handle on the embedded interpreter.
// Creating one registers it for lifecycle event callbacks; no instance owns
// the interpreter's lifetime. Callers must Close the handle when the owning
// component goes away - a closed handle never receives another event.
type Interpreter struct {
	ctx     *Context
	handler func(Event)
	closed  bool
}

// NewInterpreter creates a handle and registers it with the context's
// observer registry. handler may be nil for components that only drive the
// lifecycle and never consume events.
func (c *Context) NewInterpreter(handler func(Event)) *Interpreter {
	inst := &Interpreter{ctx: c, handler: handler}
	c.observers = append(c.observers, inst)
	return inst
}

// Close unregisters the handle. Removal is synchronous and exact-match;
// closing an already-closed handle is a no-op.
func (i *Interpreter) Close() {
	if i.closed {
		return
	}
	i.closed = true
	for idx, obs := range i.ctx.observers {
		if obs == i {
			i.ctx.observers = append(i.ctx.observers[:idx], i.ctx.observers[idx+1:]...)
			break
		}
	}
}

// InvokeEvent delivers an event to this handle's callback. Closed handles
// and handles without a callback swallow the event.
func (i *Interpreter) InvokeEvent(e Event) {
	if i.closed || i.handler == nil {
		return
	}
	i.handler(e)
}
