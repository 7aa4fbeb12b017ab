package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/passdrill/internal/common/uuid Generator

// Generator hands out run identifiers
type Generator interface {
	NewID() string
}

// DefaultGenerator implements the Generator interface with random v4 UUIDs
type DefaultGenerator struct{}

// New returns a random UUID generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new random UUID string
func (d *DefaultGenerator) NewID() string {
	return uuid.NewString()
}
