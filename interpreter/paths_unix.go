//go:build !windows

package interpreter

const (
	pathSeparator = "/"

	// sitePackagesSuffix is the compiled-in subdirectory, relative to an
	// installation prefix, where the host's packages are installed.
	sitePackagesSuffix = "lib/python3.11/site-packages"

	// landmark is a file known to exist inside the installed package
	// layout; its presence confirms a candidate prefix.
	landmark = "prismview/__init__.py"
)

// normalizeSeparators is a no-op on this platform.
func normalizeSeparators(dir string) string {
	return dir
}
