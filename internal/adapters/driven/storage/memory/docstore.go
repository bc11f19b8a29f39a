package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// It also serves as a fixed DocumentLoader in tests.
type DocumentStore struct {
	mu        sync.RWMutex
	documents []domain.Document
}

// NewDocumentStore creates a new in-memory document store holding docs.
func NewDocumentStore(docs ...domain.Document) *DocumentStore {
	s := &DocumentStore{}
	s.documents = append(s.documents, docs...)
	return s
}

// SaveDocuments replaces the stored table.
func (s *DocumentStore) SaveDocuments(_ context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append([]domain.Document(nil), docs...)
	return nil
}

// Load returns a copy of the stored table in order.
func (s *DocumentStore) Load(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Document{}, s.documents...), nil
}
