package driven

import (
	"context"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

// DocumentLoader reads the ordered document table.
// Failures to read the underlying source wrap domain.ErrDataLoad.
type DocumentLoader interface {
	// Load returns every document in table order.
	Load(ctx context.Context) ([]domain.Document, error)
}

// DocumentStore persists a document table so it can be loaded again
// without the original source.
type DocumentStore interface {
	DocumentLoader

	// SaveDocuments replaces the stored table with docs, preserving order.
	SaveDocuments(ctx context.Context, docs []domain.Document) error
}
