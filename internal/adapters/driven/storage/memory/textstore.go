package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// Ensure TextStore implements the interface.
var _ driven.TextStore = (*TextStore)(nil)

// TextStore is an in-memory implementation of driven.TextStore.
type TextStore struct {
	mu    sync.RWMutex
	texts map[string]string
}

// NewTextStore creates a new in-memory text store.
func NewTextStore() *TextStore {
	return &TextStore{
		texts: make(map[string]string),
	}
}

// SaveTexts replaces the stored texts with a copy of texts.
func (s *TextStore) SaveTexts(_ context.Context, texts map[string]string) error {
	copied := make(map[string]string, len(texts))
	for id, text := range texts {
		copied[id] = text
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = copied
	return nil
}

// Text returns the text for id.
func (s *TextStore) Text(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.texts[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return text, nil
}

// Len returns the number of stored texts.
func (s *TextStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.texts)
}
