package driven

import (
	"context"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

// SimilarityProvider gives read access to a precomputed similarity matrix.
// domain.SimilarityMatrix implements it.
type SimilarityProvider interface {
	// Size returns the number of documents N.
	Size() int

	// Row returns the similarity of document index to every document, in table order.
	// Returns an error wrapping domain.ErrOutOfRange for an invalid index.
	Row(index int) ([]float64, error)
}

// SimilarityBuilder computes the pairwise similarity matrix for a set of texts.
// Backed by the TF-IDF vectoriser.
type SimilarityBuilder interface {
	// Build returns an N x N symmetric matrix with entries in [0, 1].
	Build(ctx context.Context, texts []string) (*domain.SimilarityMatrix, error)

	// Signature describes the builder's settings. It is folded into the corpus
	// fingerprint so cached matrices are invalidated when settings change.
	Signature() string
}

// MatrixStore caches similarity matrices keyed by corpus fingerprint.
type MatrixStore interface {
	// SaveMatrix stores or replaces the matrix for fingerprint.
	SaveMatrix(ctx context.Context, fingerprint string, m *domain.SimilarityMatrix) error

	// LoadMatrix returns the cached matrix or domain.ErrNotFound.
	LoadMatrix(ctx context.Context, fingerprint string) (*domain.SimilarityMatrix, error)
}
