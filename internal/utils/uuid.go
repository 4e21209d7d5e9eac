package utils

import "github.com/google/uuid"

// IDGenerator issues identifiers for upload receipts. IDs are UUIDv7 so
// receipts sort by issue time, optionally behind a short prefix.
type IDGenerator struct {
	prefix string
}

func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix}
}

func (g *IDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// clock went backwards or entropy ran out; fall back to v4
		return g.prefix + uuid.NewString()
	}

	return g.prefix + id.String()
}
