//go:build !pylegacy

package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prismview/pyhost/internal/pystr"
	"github.com/prismview/pyhost/log"
)

func TestRunMainDecodeFailureAbortsImmediately(t *testing.T) {
	defer log.SetVerbosity(0)

	rt := newFakeRuntime()
	ctx, _ := newTestContext(rt)

	code := ctx.RunMain([]string{"good.py", "bad\xff\xfearg", "other.py"})
	assert.Equal(t, 1, code)
	assert.Zero(t, rt.mainCalls, "no partial execution after a decode failure")
}

func TestSetProgramNameDecodeFailureSubstitutesPlaceholder(t *testing.T) {
	rt := newFakeRuntime()
	ctx, _ := newTestContext(rt)

	ctx.SetProgramName("bad\xffname")
	assert.Equal(t, "", pystr.Encode(rt.programName))
}
