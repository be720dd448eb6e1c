package locate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleMaps = `558f3a000000-558f3a020000 r-xp 00000000 fd:01 123 /usr/bin/prismpython
7f2c40000000-7f2c40200000 r-xp 00000000 fd:01 456 /usr/lib/x86_64-linux-gnu/libpython3.11.so.1.0
7f2c40300000-7f2c40310000 rw-p 00000000 00:00 0
7f2c40400000-7f2c40500000 r-xp 00000000 fd:01 789 /usr/lib/x86_64-linux-gnu/libc.so.6
7ffd10000000-7ffd10020000 rw-p 00000000 00:00 0 [stack]
`

func TestScanMappedFiles(t *testing.T) {
	got := scanMappedFiles(strings.NewReader(sampleMaps), "libpython")
	assert.Equal(t, "/usr/lib/x86_64-linux-gnu/libpython3.11.so.1.0", got)
}

func TestScanMappedFilesMiss(t *testing.T) {
	assert.Equal(t, "", scanMappedFiles(strings.NewReader(sampleMaps), "libprismview"))
}

func TestScanMappedFilesSkipsAnonymous(t *testing.T) {
	// [stack] and anonymous mappings never match, even with a loose hint.
	assert.Equal(t, "", scanMappedFiles(strings.NewReader(sampleMaps), "stack"))
}

func TestModuleDefiningUnknownSymbol(t *testing.T) {
	assert.Equal(t, "", ModuleDefining("NotARealSymbol"))
}
