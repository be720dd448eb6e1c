// Package config loads and validates launcher profiles from files and the
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/prismview/pyhost/domain/entities"
)

// validate is a package-level singleton; creating a validator per call is
// expensive.
var validate = validator.New()

// Validate checks a profile against its validation tags.
func Validate(p *entities.Profile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	return nil
}

// Load reads a profile from path, layered with PRISMVIEW_* environment
// variables. An empty path searches the default locations
// (./prismpython.yaml, then ~/.config/prismview/prismpython.yaml); a
// missing file there is not an error, since the environment alone can carry
// a complete profile.
func Load(path string) (*entities.Profile, error) {
	v := viper.New()
	v.SetEnvPrefix("PRISMVIEW")
	v.AutomaticEnv()

	// Defaults double as key registrations so environment-only profiles
	// survive Unmarshal.
	v.SetDefault("module", "")
	v.SetDefault("mount", "")
	v.SetDefault("home", "")
	v.SetDefault("paths", []string(nil))
	v.SetDefault("verbosity", 0)
	v.SetDefault("capture_stdin", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read profile %s: %w", path, err)
		}
	} else {
		v.SetConfigName("prismpython")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/prismview")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read profile: %w", err)
			}
		}
	}

	var p entities.Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
