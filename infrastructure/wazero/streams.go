package wazero

import (
	"io"

	"github.com/prismview/pyhost/domain/ports"
)

// adapterWriter bridges a guest output stream onto a stream adapter. Until
// streams are bound (the startup-artifact flush runs before binding) output
// falls through to the real console.
type adapterWriter struct {
	adapter  ports.StreamAdapter
	fallback io.Writer
}

func (w *adapterWriter) Write(p []byte) (int, error) {
	if w.adapter.Write == nil {
		return w.fallback.Write(p)
	}
	w.adapter.Write(string(p))
	return len(p), nil
}

// adapterReader bridges guest stdin reads onto the adapter's read callback,
// carrying leftover bytes across short reads. A nil callback reports EOF:
// the guest has no console.
type adapterReader struct {
	adapter ports.StreamAdapter
	buf     []byte
}

func (r *adapterReader) Read(p []byte) (int, error) {
	if r.adapter.Read == nil {
		return 0, io.EOF
	}
	if len(r.buf) == 0 {
		s := r.adapter.Read()
		if s == "" {
			return 0, io.EOF
		}
		r.buf = []byte(s)
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
