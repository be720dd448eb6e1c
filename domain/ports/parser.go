package ports

import "github.com/prismview/pyhost/domain/entities"

// ProfileParser parses raw profile bytes into a Profile.
// Infrastructure adapters implement this for concrete formats.
type ProfileParser interface {
	Parse(data []byte) (*entities.Profile, error)
}
