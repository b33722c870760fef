package usecase

import "github.com/google/uuid"

// NewUUIDGenerator returns the production IDGenerator: random UUIDs for
// pane and canvas identities. Tests substitute deterministic sequences.
func NewUUIDGenerator() IDGenerator {
	return uuid.NewString
}
