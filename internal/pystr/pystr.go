// Package pystr converts host strings to and from the interpreter runtime's
// native string representation.
//
// The runtime's embedding API changed its string conventions between eras:
// modern builds take wide strings, legacy builds take byte strings. That
// difference is isolated here and selected once at build time - the default
// build uses the wide codec, the pylegacy build tag selects the byte codec.
// No other package carries version conditionals.
package pystr

// Empty returns the native form of the empty string. It is the placeholder
// substituted when decoding a program name fails.
func Empty() Native {
	return Native{}
}
