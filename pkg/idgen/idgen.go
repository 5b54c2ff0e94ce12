// Package idgen provides ID generation for generated dungeons
package idgen

import (
	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates random UUIDs
type UUIDGenerator struct{}

// Generate returns a new random UUID string
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// Static always returns the same ID. Useful in tests.
type Static string

// Generate returns the static ID
func (s Static) Generate() string {
	return string(s)
}
