package config

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Build information, set via -ldflags at release time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Supported task id schemes
const (
	IDSchemeNanoID = "nanoid"
	IDSchemeUUID   = "uuid"
)

// IDGenerator returns a fresh opaque task id
type IDGenerator func() (string, error)

// NewIDGenerator returns the generator for the given scheme.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", IDSchemeNanoID:
		return GenerateNanoID, nil
	case IDSchemeUUID:
		return GenerateUUID, nil
	default:
		return nil, fmt.Errorf("unknown id scheme: %s", scheme)
	}
}

// GenerateNanoID generates a 21-character URL-safe nanoid
func GenerateNanoID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generating nanoid: %w", err)
	}
	return id, nil
}

// GenerateUUID generates a random (v4) UUID
func GenerateUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating uuid: %w", err)
	}
	return id.String(), nil
}
