package interpreter

import (
	"fmt"
	"os"

	"github.com/prismview/pyhost/domain/ports"
)

// bindStreams hands the runtime fresh stream adapters wired into this
// context. stdin and stdout share one adapter; stderr gets its own.
// Ownership transfers to the runtime. Callers must hold the execution lock.
func (c *Context) bindStreams() {
	out := ports.StreamAdapter{Write: c.WriteStdOut, Read: c.ReadStdin}
	errs := ports.StreamAdapter{Write: c.WriteStdErr}
	c.runtime.BindStreams(out, errs)
}

// WriteStdOut receives interpreter stdout text. While console buffering is
// active the text accumulates for delivery as one notification after the
// current script; otherwise it is displayed and notified immediately.
func (c *Context) WriteStdOut(txt string) {
	if c.consoleBuffering {
		c.stdoutBuffer.WriteString(txt)
		return
	}
	c.output.DisplayText(txt)
	c.notify(Event{Kind: EventSetOutput, Text: txt})
}

// WriteStdErr receives interpreter stderr text; same buffering rules as
// WriteStdOut, delivered as error display plus Error notification.
func (c *Context) WriteStdErr(txt string) {
	if c.consoleBuffering {
		c.stderrBuffer.WriteString(txt)
		return
	}
	c.output.DisplayErrorText(txt)
	c.notify(Event{Kind: EventError, Text: txt})
}

// FlushStdOut is a no-op: buffering is managed per script execution, not
// per write.
func (c *Context) FlushStdOut() {}

// FlushStdErr is a no-op.
func (c *Context) FlushStdErr() {}

// ReadStdin supplies interpreter stdin. With capture disabled it blocks
// reading one token from the console. With capture enabled it sends an
// Update event whose Reply the observer populates synchronously.
func (c *Context) ReadStdin() string {
	if !c.captureStdin {
		var s string
		fmt.Fscan(os.Stdin, &s)
		return s
	}
	var s string
	c.notify(Event{Kind: EventUpdate, Reply: &s})
	return s
}

// ConsoleWindow is the default display subsystem: the OS console.
type ConsoleWindow struct{}

// DisplayText writes to standard output.
func (ConsoleWindow) DisplayText(text string) {
	fmt.Fprint(os.Stdout, text)
}

// DisplayErrorText writes to standard error.
func (ConsoleWindow) DisplayErrorText(text string) {
	fmt.Fprint(os.Stderr, text)
}
