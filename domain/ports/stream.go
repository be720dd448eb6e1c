package ports

// StreamAdapter is the string-capture stream collaborator handed to the
// runtime in place of a console stream. Write receives every chunk of text
// the interpreter emits on the stream. Read, when non-nil, supplies input
// for streams that double as stdin; write-only streams leave it nil.
//
// Adapters are constructed fresh per binding and ownership transfers to the
// runtime; the creator must retain no reference afterward.
type StreamAdapter struct {
	Write func(text string)
	Read  func() string
}
