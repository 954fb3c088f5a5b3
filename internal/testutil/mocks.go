package testutil

import (
	"sync"

	"github.com/cardbook/cardbook-backend/internal/domain"
)

// MockSnapshotRepository is an in-memory implementation of
// domain.SnapshotRepository that records save activity for assertions.
type MockSnapshotRepository struct {
	mu        sync.Mutex
	Data      map[string][]byte
	SaveCalls int
	LoadErr   error
	SaveErr   error
}

// NewMockSnapshotRepository creates a new MockSnapshotRepository
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		Data: make(map[string][]byte),
	}
}

// Load returns the stored blob for the key
func (m *MockSnapshotRepository) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	data, ok := m.Data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return data, nil
}

// Save stores the blob under the key
func (m *MockSnapshotRepository) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	m.Data[key] = copied
	return nil
}

// Saved returns the last blob stored under the key, if any
func (m *MockSnapshotRepository) Saved(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.Data[key]
	return data, ok
}
