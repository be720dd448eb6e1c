package interpreter

import (
	"os"
	"path/filepath"

	"github.com/prismview/pyhost/internal/pystr"
	"github.com/prismview/pyhost/log"
)

// hostLibrarySymbol is defined by the host's own shared library; locating
// it anchors the module search path walk for shared builds.
const hostLibrarySymbol = "PrismviewVersion"

// setupModuleSearchPaths searches for the host's installed package
// directory and, when found, prepends it to the module search path.
//
// The walk starts at the directory of the host's shared library (shared
// builds) or at the directory derived from the program name (static builds
// or locator miss), and climbs one ancestor at a time testing for the
// landmark file. The first, deepest match wins; no match means silent
// degradation - a missing import surfaces later from the runtime itself.
func (c *Context) setupModuleSearchPaths() {
	var start string
	if sharedLibraryBuild {
		log.Verbose("shared library build detected.")
		if lib := c.locate(hostLibrarySymbol); lib != "" {
			start = filepath.Dir(lib)
		} else {
			log.Verbose("`" + hostLibrarySymbol + "` library couldn't be found. Will use the program name next.")
		}
	} else {
		log.Verbose("static build detected. Using the program name to locate modules.")
	}
	if start == "" {
		name := pystr.Encode(c.runtime.ProgramName())
		abs, err := filepath.Abs(name)
		if err != nil {
			abs = name
		}
		start = abs
	}

	for dir := start; ; {
		candidate := filepath.Join(dir, sitePackagesSuffix)
		mark := filepath.Join(candidate, landmark)
		if fileExists(mark) {
			log.VerboseVV("trying landmark file -- success!", "path", mark)
			c.safePrependLivePath(candidate)
			break
		}
		log.VerboseVV("trying landmark file -- failed!", "path", mark)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}

// prependLivePath prepends dir to the runtime's live module search path
// under the execution lock.
func (c *Context) prependLivePath(dir string) {
	log.Verbose("adding module search path", "dir", dir)
	lock := c.runtime.ExecLock()
	lock.Lock()
	defer lock.Unlock()
	c.runtime.PrependPath(dir)
}

// safePrependLivePath prepends dir only when it is an existing directory.
func (c *Context) safePrependLivePath(dir string) {
	log.VerboseVV("trying", "dir", dir)
	if dir != "" && isDirectory(dir) {
		c.prependLivePath(dir)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
