// Package parser provides profile parsers for concrete formats.
package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/prismview/pyhost/domain/entities"
	"github.com/prismview/pyhost/domain/ports"
)

// YamlProfileParser implements ProfileParser for YAML.
type YamlProfileParser struct{}

// NewYamlProfileParser creates a new YamlProfileParser.
func NewYamlProfileParser() ports.ProfileParser {
	return &YamlProfileParser{}
}

// Parse unmarshals YAML bytes into a Profile.
func (p *YamlProfileParser) Parse(data []byte) (*entities.Profile, error) {
	var profile entities.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
