package interpreter

import "strings"

const (
	pathSeparator = "\\"

	sitePackagesSuffix = "Lib\\site-packages"

	landmark = "prismview\\__init__.py"
)

// normalizeSeparators converts slashes for this platform.
func normalizeSeparators(dir string) string {
	return strings.ReplaceAll(dir, "/", "\\")
}
