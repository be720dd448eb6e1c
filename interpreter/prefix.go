package interpreter

import (
	"path/filepath"

	"github.com/prismview/pyhost/internal/pystr"
	"github.com/prismview/pyhost/log"
)

const (
	// runtimeLibrarySymbol is known to be defined by the interpreter
	// runtime library; locating it reveals where the runtime lives.
	runtimeLibrarySymbol = "Py_SetProgramName"

	// defaultProgramName is the runtime's out-of-the-box program name.
	defaultProgramName = "python"

	// launcherName is the sibling binary name synthesized next to the
	// runtime library so the runtime's own prefix-discovery heuristic
	// finds its standard library.
	launcherName = "prismpython"
)

// setupRuntimeHome guides the runtime toward its standard library when the
// user has not configured it explicitly. All failures here are silent
// feature degradation, reported on the verbose channel only.
func (c *Context) setupRuntimeHome() {
	if c.runtime.Home() != "" {
		// Don't override an already overridden environment.
		log.Verbose("`PYTHONHOME` already set. Leaving unchanged.")
		return
	}

	lib := c.locate(runtimeLibrarySymbol)
	if lib == "" {
		log.Verbose("static runtime build or `" + runtimeLibrarySymbol + "` library couldn't be found. " +
			"Set `PYTHONHOME` if the standard library fails to load.")
		return
	}

	oldName := pystr.Encode(c.runtime.ProgramName())
	if oldName != "" && oldName != defaultProgramName {
		log.Verbose("program-name has been changed. Leaving unchanged.")
		return
	}

	newName := filepath.Dir(lib) + pathSeparator + launcherName
	log.Verbose("setting program name to aid in setup of the runtime prefix.", "name", newName)
	c.SetProgramName(newName)
}
