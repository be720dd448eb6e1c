package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSchema(t *testing.T) {
	data, err := ProfileSchema()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	props, ok := decoded["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "module")
	assert.Contains(t, props, "verbosity")

	required, _ := decoded["required"].([]interface{})
	assert.Contains(t, required, "module")
}
