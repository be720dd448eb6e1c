//go:build !pylegacy

package pystr

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Native is the runtime's wide string representation.
type Native []rune

// Decode converts a host string to its native wide form. Strings carrying
// bytes that are not well-formed UTF-8 cannot be represented and fail.
func Decode(s string) (Native, error) {
	if _, _, err := transform.String(encoding.UTF8Validator, s); err != nil {
		return nil, fmt.Errorf("pystr: decode: %w", err)
	}
	return Native(s), nil
}

// Encode converts a native wide string back to a host string.
func Encode(n Native) string {
	return string(n)
}
