package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// Ensure MatrixStore implements the interface.
var _ driven.MatrixStore = (*MatrixStore)(nil)

// MatrixStore is an in-memory implementation of driven.MatrixStore.
// Matrices are immutable, so they are shared rather than copied.
type MatrixStore struct {
	mu       sync.RWMutex
	matrices map[string]*domain.SimilarityMatrix
}

// NewMatrixStore creates a new in-memory matrix store.
func NewMatrixStore() *MatrixStore {
	return &MatrixStore{
		matrices: make(map[string]*domain.SimilarityMatrix),
	}
}

// SaveMatrix stores or replaces the matrix for fingerprint.
func (s *MatrixStore) SaveMatrix(_ context.Context, fingerprint string, m *domain.SimilarityMatrix) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matrices[fingerprint] = m
	return nil
}

// LoadMatrix returns the cached matrix for fingerprint.
func (s *MatrixStore) LoadMatrix(_ context.Context, fingerprint string) (*domain.SimilarityMatrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matrices[fingerprint]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}
