package wazero

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prismview/pyhost/domain/ports"
	"github.com/prismview/pyhost/internal/pystr"
)

func TestStartWithoutBinary(t *testing.T) {
	r := New()
	err := r.Start(false)
	require.Error(t, err)
	assert.False(t, r.Initialized())
}

func TestPrependPathOrder(t *testing.T) {
	r := New()
	r.PrependPath("/a")
	r.PrependPath("/b")
	assert.Equal(t, []string{"/b", "/a"}, r.Paths())
}

func TestHomeOverride(t *testing.T) {
	r := New(WithHome("/opt/pyhome"))
	assert.Equal(t, "/opt/pyhome", r.Home())

	r = New()
	t.Setenv("PYTHONHOME", "/env/home")
	assert.Equal(t, "/env/home", r.Home())
}

func TestProgramNameDefaultsToInterpreter(t *testing.T) {
	r := New()
	assert.Equal(t, interpreterArgv0, pystr.Encode(r.ProgramName()))
}

func TestRunBeforeStartFails(t *testing.T) {
	r := New()
	assert.Equal(t, 1, r.Eval("print('x')"))
}

func TestAdapterWriterFallsBack(t *testing.T) {
	var captured []string
	w := &adapterWriter{
		adapter:  ports.StreamAdapter{Write: func(s string) { captured = append(captured, s) }},
		fallback: io.Discard,
	}
	n, err := w.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"hi"}, captured)
}

func TestAdapterReaderBuffersLeftovers(t *testing.T) {
	calls := 0
	r := &adapterReader{adapter: ports.StreamAdapter{Read: func() string {
		calls++
		if calls == 1 {
			return "hello"
		}
		return ""
	}}}

	p := make([]byte, 3)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "hel", string(p[:n]))

	n, err = r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "lo", string(p[:n]))

	_, err = r.Read(p)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, calls)
}

func TestAdapterReaderWithoutCallback(t *testing.T) {
	r := &adapterReader{}
	_, err := r.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}
