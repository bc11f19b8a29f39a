package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
	"github.com/custodia-labs/docrec/internal/core/ports/driving"
	"github.com/custodia-labs/docrec/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService loads the document table, builds the similarity matrix and
// publishes immutable corpus snapshots. Readers always see a complete snapshot;
// a reload swaps it atomically. Loads are serialised.
type CorpusService struct {
	loadMu   sync.Mutex
	loader   driven.DocumentLoader
	builder  driven.SimilarityBuilder
	texts    driven.TextStore
	current  atomic.Pointer[domain.Corpus]
	snippets driven.DocumentLoader
	matrices driven.MatrixStore
	docStore driven.DocumentStore
}

// NewCorpusService creates a new corpus service. texts may be nil when the
// snippet texts are not persisted.
func NewCorpusService(
	loader driven.DocumentLoader,
	builder driven.SimilarityBuilder,
	texts driven.TextStore,
) *CorpusService {
	return &CorpusService{
		loader:  loader,
		builder: builder,
		texts:   texts,
	}
}

// SetSnippetLoader sets a second table supplying snippet text by document ID.
func (s *CorpusService) SetSnippetLoader(loader driven.DocumentLoader) {
	s.snippets = loader
}

// SetMatrixStore enables caching of similarity matrices.
func (s *CorpusService) SetMatrixStore(store driven.MatrixStore) {
	s.matrices = store
}

// SetDocumentStore sets where Persist writes the document table.
func (s *CorpusService) SetDocumentStore(store driven.DocumentStore) {
	s.docStore = store
}

// Load reads the documents and publishes a new snapshot.
// A failed load leaves the previous snapshot and the text store untouched.
func (s *CorpusService) Load(ctx context.Context) (*domain.Corpus, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	logger.Section("Corpus Load")

	docs, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}
	logger.Debug("Loaded %d documents", len(docs))

	texts, err := s.loadTexts(ctx, docs)
	if err != nil {
		return nil, err
	}

	fingerprint := Fingerprint(docs, s.builder.Signature())
	logger.Debug("Fingerprint: %s", fingerprint)

	matrix, err := s.matrix(ctx, docs, fingerprint)
	if err != nil {
		return nil, err
	}
	if matrix.Size() != len(docs) {
		return nil, fmt.Errorf("%w: matrix size %d for %d documents", domain.ErrDataLoad, matrix.Size(), len(docs))
	}

	if s.texts != nil {
		if err := s.texts.SaveTexts(ctx, texts); err != nil {
			return nil, fmt.Errorf("saving snippet texts: %w", err)
		}
	}

	corpus := &domain.Corpus{
		Documents:   docs,
		Matrix:      matrix,
		Texts:       texts,
		Fingerprint: fingerprint,
		LoadedAt:    time.Now(),
	}
	s.current.Store(corpus)

	logger.Info("Corpus ready: %d documents", corpus.Size())
	return corpus, nil
}

// Current returns the published snapshot.
func (s *CorpusService) Current() (*domain.Corpus, error) {
	corpus := s.current.Load()
	if corpus == nil {
		return nil, domain.ErrCorpusNotLoaded
	}
	return corpus, nil
}

// Document returns the document at index.
func (s *CorpusService) Document(_ context.Context, index int) (*domain.Document, error) {
	corpus, err := s.Current()
	if err != nil {
		return nil, err
	}
	return corpus.Document(index)
}

// Preview returns the first n characters of the document text.
func (s *CorpusService) Preview(ctx context.Context, index, n int) (string, error) {
	doc, err := s.Document(ctx, index)
	if err != nil {
		return "", err
	}
	return domain.Snippet(doc.Text, n), nil
}

// Persist writes the current snapshot to the document and matrix stores.
func (s *CorpusService) Persist(ctx context.Context) error {
	corpus, err := s.Current()
	if err != nil {
		return err
	}
	if s.docStore == nil {
		return errors.New("document store not configured")
	}

	if err := s.docStore.SaveDocuments(ctx, corpus.Documents); err != nil {
		return fmt.Errorf("persisting documents: %w", err)
	}
	if s.matrices != nil {
		if err := s.matrices.SaveMatrix(ctx, corpus.Fingerprint, corpus.Matrix); err != nil {
			return fmt.Errorf("persisting matrix: %w", err)
		}
	}

	logger.Info("Persisted %d documents", corpus.Size())
	return nil
}

// loadTexts reads snippet texts from the snippet table, or from docs when
// no snippet table is configured.
func (s *CorpusService) loadTexts(ctx context.Context, docs []domain.Document) (map[string]string, error) {
	source := docs
	if s.snippets != nil {
		snippetDocs, err := s.snippets.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading snippet texts: %w", err)
		}
		source = snippetDocs
	}

	texts := make(map[string]string, len(source))
	for i := range source {
		texts[source[i].ID] = source[i].Text
	}
	return texts, nil
}

// matrix restores the similarity matrix from cache or builds it.
func (s *CorpusService) matrix(
	ctx context.Context, docs []domain.Document, fingerprint string,
) (*domain.SimilarityMatrix, error) {
	if s.matrices != nil {
		m, err := s.matrices.LoadMatrix(ctx, fingerprint)
		switch {
		case err == nil:
			logger.Debug("Matrix cache hit")
			return m, nil
		case errors.Is(err, domain.ErrNotFound):
			logger.Debug("Matrix cache miss")
		default:
			logger.Warn("Matrix cache unavailable: %v", err)
		}
	}

	m, err := s.build(ctx, docs)
	if err != nil {
		return nil, err
	}

	if s.matrices != nil {
		if err := s.matrices.SaveMatrix(ctx, fingerprint, m); err != nil {
			logger.Warn("Could not cache matrix: %v", err)
		}
	}
	return m, nil
}

// build vectorises docs. A corpus whose vocabulary is pruned away entirely
// gets an identity matrix so the CLI still works on tiny tables.
func (s *CorpusService) build(ctx context.Context, docs []domain.Document) (*domain.SimilarityMatrix, error) {
	if len(docs) == 0 {
		return domain.NewSimilarityMatrix(0), nil
	}
	defer logger.Timed("Vectorise")()

	texts := make([]string, len(docs))
	for i := range docs {
		texts[i] = docs[i].Text
	}

	m, err := s.builder.Build(ctx, texts)
	if errors.Is(err, domain.ErrEmptyVocabulary) {
		logger.Warn("Vectoriser produced no terms, documents will only match themselves")
		m = domain.NewSimilarityMatrix(len(docs))
		for i := range docs {
			m.SetSymmetric(i, i, 1)
		}
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("building similarity matrix: %w", err)
	}
	return m, nil
}

// Fingerprint identifies a document table together with the settings
// that produced its similarity matrix.
func Fingerprint(docs []domain.Document, signature string) string {
	h := sha256.New()
	h.Write([]byte(signature))
	for i := range docs {
		h.Write([]byte{0})
		h.Write([]byte(docs[i].ID))
		h.Write([]byte{0})
		h.Write([]byte(docs[i].Text))
	}
	return hex.EncodeToString(h.Sum(nil))
}
