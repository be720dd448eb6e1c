package ports

// OutputWindow is the host's display subsystem. Interpreter output and
// error text are delivered here instead of the OS console.
type OutputWindow interface {
	// DisplayText shows plain interpreter output.
	DisplayText(text string)

	// DisplayErrorText shows interpreter error output.
	DisplayErrorText(text string)
}
