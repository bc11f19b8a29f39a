package tui

import (
	"context"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

type mockRecommendService struct {
	calls []int
}

func (m *mockRecommendService) Recommend(
	_ context.Context, index int, _ domain.RecommendOptions,
) (*domain.RecommendationSet, error) {
	if index < 0 || index >= len(testDocuments) {
		return nil, domain.OutOfRange(index, len(testDocuments))
	}
	m.calls = append(m.calls, index)
	selected := testDocuments[index]
	return &domain.RecommendationSet{RequestID: "request-1", Selected: index, SelectedDocument: &selected}, nil
}

func (m *mockRecommendService) DefaultOptions() domain.RecommendOptions {
	return domain.DefaultRecommendOptions()
}

type mockCorpusService struct {
	loaded  bool
	loads   int
	loadErr error
}

var testDocuments = []domain.Document{
	{ID: "d0", Type: "memo", Text: "quarterly memo"},
	{ID: "d1", Type: "invoice", Text: "invoice"},
}

func (m *mockCorpusService) Load(_ context.Context) (*domain.Corpus, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	m.loaded = true
	return &domain.Corpus{Documents: testDocuments}, nil
}

func (m *mockCorpusService) Current() (*domain.Corpus, error) {
	if !m.loaded {
		return nil, domain.ErrCorpusNotLoaded
	}
	return &domain.Corpus{Documents: testDocuments}, nil
}

func (m *mockCorpusService) Document(_ context.Context, index int) (*domain.Document, error) {
	corpus, err := m.Current()
	if err != nil {
		return nil, err
	}
	return corpus.Document(index)
}

func (m *mockCorpusService) Preview(_ context.Context, _, _ int) (string, error) {
	return "", nil
}

func (m *mockCorpusService) Persist(_ context.Context) error {
	return nil
}
