package driving

import (
	"context"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

// CorpusService loads the document table and owns the current corpus snapshot.
type CorpusService interface {
	// Load reads the documents, builds (or restores) the similarity matrix
	// and publishes the new snapshot.
	Load(ctx context.Context) (*domain.Corpus, error)

	// Current returns the published snapshot or domain.ErrCorpusNotLoaded.
	Current() (*domain.Corpus, error)

	// Document returns the document at index or domain.ErrOutOfRange.
	Document(ctx context.Context, index int) (*domain.Document, error)

	// Preview returns the first n characters of the document text followed by an ellipsis.
	Preview(ctx context.Context, index, n int) (string, error)

	// Persist writes the current snapshot's documents and matrix to the configured stores.
	Persist(ctx context.Context) error
}
