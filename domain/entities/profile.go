// Package entities holds the plain data types shared across the SDK.
package entities

// Profile describes one embedded-interpreter installation: where its WASM
// build lives, what gets mounted into its filesystem, and how the launcher
// should behave. Profiles are loaded from YAML files or the environment.
type Profile struct {
	// Module is the path to the interpreter runtime module (a WASM build).
	Module string `json:"module" yaml:"module" mapstructure:"module" validate:"required"`

	// Mount is a host directory exposed to the interpreter as its root
	// filesystem. Empty means no filesystem access.
	Mount string `json:"mount,omitempty" yaml:"mount" mapstructure:"mount"`

	// Home overrides the runtime home directory. Empty defers to the
	// runtime's own discovery (or the PYTHONHOME environment variable).
	Home string `json:"home,omitempty" yaml:"home" mapstructure:"home"`

	// Paths are module search paths prepended before any script runs.
	Paths []string `json:"paths,omitempty" yaml:"paths" mapstructure:"paths"`

	// Verbosity is the diagnostics level: 0 silent, 1 verbose, 2 very verbose.
	Verbosity int `json:"verbosity,omitempty" yaml:"verbosity" mapstructure:"verbosity" validate:"min=0,max=2"`

	// CaptureStdin routes interpreter stdin reads through the host's
	// event mechanism instead of the console.
	CaptureStdin bool `json:"capture_stdin,omitempty" yaml:"capture_stdin" mapstructure:"capture_stdin"`
}
