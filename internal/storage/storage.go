package storage

import (
	"context"

	"studybot/internal/models"
)

// Storage defines the interface for data storage operations
type Storage interface {
	// SaveGeneration appends one generation record. There is no update
	// or delete path; the table is an append-only sink.
	SaveGeneration(ctx context.Context, record models.GenerationRecord) error

	// Lifecycle
	Initialize(ctx context.Context) error
	Close() error
}
