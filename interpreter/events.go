package interpreter

// EventKind identifies a lifecycle notification delivered to observers.
type EventKind int

const (
	// EventEnter fires once, after first-time startup completes.
	EventEnter EventKind = iota + 1

	// EventExit fires before the runtime shuts down.
	EventExit

	// EventError carries error text produced by a script.
	EventError

	// EventSetOutput carries output text produced by a script.
	EventSetOutput

	// EventUpdate is an input request: the observer fills Reply
	// synchronously before returning.
	EventUpdate
)

// String returns the event kind's name.
func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventExit:
		return "exit"
	case EventError:
		return "error"
	case EventSetOutput:
		return "set-output"
	case EventUpdate:
		return "update"
	}
	return "unknown"
}

// Event is the payload delivered to observer callbacks.
type Event struct {
	Kind EventKind

	// Text carries output for EventError and EventSetOutput.
	Text string

	// Reply is the mutable destination for EventUpdate. The observer must
	// populate it before its callback returns; delivery is cooperative and
	// single-threaded.
	Reply *string
}
