//go:build !linux && !windows

package locate

// No loaded-module introspection on this platform. Callers fall back to
// environment configuration.
func moduleByHint(string) string {
	return ""
}
