package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace IDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 if the v7
// clock sequence cannot be read.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
