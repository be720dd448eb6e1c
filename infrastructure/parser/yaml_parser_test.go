package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	data := []byte(`
module: /opt/python311.wasm
paths:
  - /lib/a
verbosity: 2
`)
	p, err := NewYamlProfileParser().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "/opt/python311.wasm", p.Module)
	assert.Equal(t, []string{"/lib/a"}, p.Paths)
	assert.Equal(t, 2, p.Verbosity)
}

func TestParseInvalidYaml(t *testing.T) {
	_, err := NewYamlProfileParser().Parse([]byte("module: [unclosed"))
	assert.Error(t, err)
}
