package mocks

import (
	"context"
	"sync"

	"showcase/internal/core/domain"
)

// MockSource is an in-memory implementation of the TemplateSource and
// ThumbnailSource ports for testing.
type MockSource struct {
	mu      sync.RWMutex
	entries []domain.FileEntry
	err     error
}

// NewMockSource creates an empty mock source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Add registers an entry by filename, stripping the extension for the name
// the way the filesystem adapters do.
func (m *MockSource) Add(name, filename string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, domain.FileEntry{Name: name, Filename: filename})
}

// FailWith makes every subsequent List call return err.
func (m *MockSource) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// List returns the registered entries.
func (m *MockSource) List(ctx context.Context) ([]domain.FileEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}
	entries := make([]domain.FileEntry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}
