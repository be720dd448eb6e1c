//go:build !staticbuild

package interpreter

// sharedLibraryBuild reports how the host was linked; it decides where the
// module search path walk starts.
const sharedLibraryBuild = true
