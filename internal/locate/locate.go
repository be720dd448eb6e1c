// Package locate finds the on-disk location of loaded runtime modules.
//
// The result guides path discovery only; an empty answer means "cannot
// determine" and callers degrade to environment configuration instead of
// treating it as an error.
package locate

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
)

// symbolLibraries maps runtime symbols to the base-name hint of the shared
// library that defines them.
var symbolLibraries = map[string]string{
	"Py_SetProgramName": "libpython",
	"PrismviewVersion":  "libprismview",
}

// ModuleDefining returns the file path of the loaded module that defines
// symbol, or "" when it cannot be determined (static build, unknown symbol,
// or a platform without loaded-module introspection).
func ModuleDefining(symbol string) string {
	hint, ok := symbolLibraries[symbol]
	if !ok {
		return ""
	}
	return moduleByHint(hint)
}

// scanMappedFiles reads a loaded-module table in /proc/self/maps format and
// returns the path of the first mapped file whose base name contains hint.
func scanMappedFiles(r io.Reader, hint string) string {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 6 {
			continue
		}
		path := fields[5]
		if !strings.HasPrefix(path, "/") {
			continue
		}
		if strings.Contains(filepath.Base(path), hint) {
			return path
		}
	}
	return ""
}
