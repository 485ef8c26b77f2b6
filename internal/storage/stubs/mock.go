package stubs

import (
	"context"
	"sync"

	"studybot/internal/models"
)

// MockDB is an in-memory implementation of the Storage interface for testing
type MockDB struct {
	mu       sync.RWMutex
	records  []models.GenerationRecord
	failSave bool
}

// NewMockDB creates a new mock database
func NewMockDB() *MockDB {
	return &MockDB{
		records: make([]models.GenerationRecord, 0),
	}
}

// Initialize does nothing for mock DB
func (m *MockDB) Initialize(ctx context.Context) error {
	return nil
}

// SaveGeneration appends the record to the in-memory slice
func (m *MockDB) SaveGeneration(ctx context.Context, record models.GenerationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSave {
		return context.DeadlineExceeded
	}

	m.records = append(m.records, record)
	return nil
}

// Records returns a copy of everything saved so far
func (m *MockDB) Records() []models.GenerationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.GenerationRecord, len(m.records))
	copy(out, m.records)
	return out
}

// FailSaves makes subsequent SaveGeneration calls return an error
func (m *MockDB) FailSaves(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSave = fail
}

// Close does nothing for mock DB
func (m *MockDB) Close() error {
	return nil
}
