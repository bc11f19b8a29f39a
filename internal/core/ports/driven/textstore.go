package driven

import "context"

// TextStore holds the canonical text used for snippets, keyed by document ID.
// It is replaced after each successful load so lookups never scan the document table.
type TextStore interface {
	// SaveTexts replaces the stored texts.
	SaveTexts(ctx context.Context, texts map[string]string) error

	// Text returns the text for id or domain.ErrNotFound.
	Text(ctx context.Context, id string) (string, error)
}
