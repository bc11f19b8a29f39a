package domain

import "time"

// Document is one row of the document table.
// Its identity within a run is its position in Corpus.Documents.
type Document struct {
	// ID is the unique identifier (the DocId column).
	ID string

	// Type is the category label used for diverse recommendations.
	Type string

	// Text is the full normalised content used for vectorisation.
	Text string

	// FileSize is the size reported by the source table, if any.
	FileSize string

	// FilePath is the original location reported by the source table, if any.
	FilePath string
}

// Corpus is an immutable snapshot of a loaded document table and its
// similarity matrix. Reloading produces a new Corpus.
type Corpus struct {
	// Documents is the ordered document table, indexed 0..N-1.
	Documents []Document

	// Matrix holds pairwise similarities aligned with Documents.
	Matrix *SimilarityMatrix

	// Texts maps document IDs to the snippet text loaded alongside Documents.
	Texts map[string]string

	// Fingerprint identifies the texts and vectoriser settings the matrix was built from.
	Fingerprint string

	// LoadedAt is when the snapshot was built.
	LoadedAt time.Time
}

// Size returns the number of documents.
func (c *Corpus) Size() int {
	if c == nil {
		return 0
	}
	return len(c.Documents)
}

// Types returns the category label of every document in table order.
func (c *Corpus) Types() []string {
	types := make([]string, len(c.Documents))
	for i := range c.Documents {
		types[i] = c.Documents[i].Type
	}
	return types
}

// Document returns the document at index, or ErrOutOfRange.
func (c *Corpus) Document(index int) (*Document, error) {
	if index < 0 || index >= c.Size() {
		return nil, OutOfRange(index, c.Size())
	}
	doc := c.Documents[index]
	return &doc, nil
}

// Text returns the snippet text loaded for id.
func (c *Corpus) Text(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	text, ok := c.Texts[id]
	return text, ok
}
