//go:build pylegacy

package pystr

// Native is the runtime's byte string representation. Legacy builds take
// the host bytes as-is, so decoding never fails.
type Native []byte

// Decode converts a host string to its native byte form.
func Decode(s string) (Native, error) {
	return Native(s), nil
}

// Encode converts a native byte string back to a host string.
func Encode(n Native) string {
	return string(n)
}
