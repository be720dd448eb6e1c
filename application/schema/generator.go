// Package schema provides JSON schema generation for launcher profiles.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/prismview/pyhost/domain/entities"
)

// GenerateSchema creates a JSON schema from a Go struct using reflection
// (JSON Schema Draft 2020-12).
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	s := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return jsonBytes, nil
}

// ProfileSchema returns the JSON schema describing launcher profiles, for
// editor tooling and CI validation.
func ProfileSchema() ([]byte, error) {
	return GenerateSchema(&entities.Profile{})
}
