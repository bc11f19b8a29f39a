package mcp

import (
	"context"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

// mockRecommendService is a mock implementation of driving.RecommendationService.
type mockRecommendService struct {
	set      *domain.RecommendationSet
	err      error
	gotIndex int
	gotOpts  domain.RecommendOptions
}

func (m *mockRecommendService) Recommend(
	_ context.Context,
	index int,
	opts domain.RecommendOptions,
) (*domain.RecommendationSet, error) {
	m.gotIndex = index
	m.gotOpts = opts
	return m.set, m.err
}

func (m *mockRecommendService) DefaultOptions() domain.RecommendOptions {
	return domain.DefaultRecommendOptions()
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	corpus *domain.Corpus
	err    error
}

func (m *mockCorpusService) Load(_ context.Context) (*domain.Corpus, error) {
	return m.corpus, m.err
}

func (m *mockCorpusService) Current() (*domain.Corpus, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.corpus == nil {
		return nil, domain.ErrCorpusNotLoaded
	}
	return m.corpus, nil
}

func (m *mockCorpusService) Document(_ context.Context, index int) (*domain.Document, error) {
	corpus, err := m.Current()
	if err != nil {
		return nil, err
	}
	return corpus.Document(index)
}

func (m *mockCorpusService) Preview(ctx context.Context, index, n int) (string, error) {
	doc, err := m.Document(ctx, index)
	if err != nil {
		return "", err
	}
	return domain.Snippet(doc.Text, n), nil
}

func (m *mockCorpusService) Persist(_ context.Context) error {
	return m.err
}

func testCorpus() *domain.Corpus {
	return &domain.Corpus{
		Documents: []domain.Document{
			{ID: "d0", Type: "memo", Text: "quarterly sales memo", FilePath: "/docs/d0.txt", FileSize: "12 KB"},
			{ID: "d1", Type: "memo", Text: "annual sales memo"},
			{ID: "d2", Type: "invoice", Text: "invoice for services"},
		},
	}
}

func testPorts() (*Ports, *mockRecommendService) {
	rec := &mockRecommendService{}
	return &Ports{Recommend: rec, Corpus: &mockCorpusService{corpus: testCorpus()}}, rec
}

func intPtr(v int) *int {
	return &v
}
