package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docrec/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docrec/internal/core/domain"
)

func loadedExampleService(t *testing.T) *RecommendationService {
	t.Helper()
	corpus, _, _ := newExampleCorpusService(t)
	_, err := corpus.Load(context.Background())
	require.NoError(t, err)
	return NewRecommendationService(corpus, fixedSampler{}, domain.DefaultRecommendOptions())
}

func TestRecommendationService_DefaultOptions(t *testing.T) {
	opts := domain.DefaultRecommendOptions()
	opts.TopN = 9

	svc := NewRecommendationService(nil, fixedSampler{}, opts)

	assert.Equal(t, 9, svc.DefaultOptions().TopN)
}

func TestRecommendationService_Recommend(t *testing.T) {
	svc := loadedExampleService(t)

	set, err := svc.Recommend(context.Background(), 0, exampleOptions(2))

	require.NoError(t, err)
	assert.NotEmpty(t, set.RequestID)
	assert.Equal(t, 0, set.Selected)
	assert.Equal(t, "d0", set.SelectedID)
	assert.Equal(t, []int{1, 4}, set.Top)
	assert.Equal(t, []int{1}, set.Medium)
	assert.Equal(t, []int{2, 3}, set.Diverse)

	require.Len(t, set.Items, 4)
	first := set.Items[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "d1", first.ID)
	assert.Equal(t, "A", first.Type)
	assert.Equal(t, 0.9, first.Score)
	assert.Equal(t, domain.BandTop, first.Band)
	assert.Equal(t, "alpha report on yearly sales...", first.Snippet)

	assert.Equal(t, domain.BandDiverse, set.Items[2].Band)
	assert.Equal(t, "B", set.Items[2].Type)
}

func TestRecommendationService_Recommend_SharedIndexAppearsInBothBands(t *testing.T) {
	svc := loadedExampleService(t)

	set, err := svc.Recommend(context.Background(), 0, exampleOptions(2))
	require.NoError(t, err)

	top := set.ItemsFor(domain.BandTop)
	medium := set.ItemsFor(domain.BandMedium)
	require.Len(t, medium, 1)
	assert.Equal(t, top[0], medium[0])
	assert.Equal(t, domain.BandTop, medium[0].Band, "earliest band wins")
}

func TestRecommendationService_Recommend_SnippetTruncated(t *testing.T) {
	corpus, _, _ := newExampleCorpusService(t)
	long := strings.Repeat("Lorem ipsum ", 20)
	corpus.SetSnippetLoader(memory.NewDocumentStore(domain.Document{ID: "d1", Text: long}))
	_, err := corpus.Load(context.Background())
	require.NoError(t, err)
	svc := NewRecommendationService(corpus, fixedSampler{}, domain.DefaultRecommendOptions())

	set, err := svc.Recommend(context.Background(), 0, exampleOptions(1))
	require.NoError(t, err)

	assert.Equal(t, long[:120]+domain.Ellipsis, set.Items[0].Snippet)
}

func TestRecommendationService_Recommend_MissingSnippetFallsBack(t *testing.T) {
	corpus, _, _ := newExampleCorpusService(t)
	corpus.SetSnippetLoader(memory.NewDocumentStore(domain.Document{ID: "d0", Text: "only d0"}))
	_, err := corpus.Load(context.Background())
	require.NoError(t, err)
	svc := NewRecommendationService(corpus, fixedSampler{}, domain.DefaultRecommendOptions())

	set, err := svc.Recommend(context.Background(), 0, exampleOptions(1))
	require.NoError(t, err)

	assert.Equal(t, "alpha report on yearly sales...", set.Items[0].Snippet)
}

func TestRecommendationService_Recommend_CarriesSelectedDocument(t *testing.T) {
	svc := loadedExampleService(t)

	set, err := svc.Recommend(context.Background(), 3, exampleOptions(1))
	require.NoError(t, err)

	require.NotNil(t, set.SelectedDocument)
	assert.Equal(t, "d3", set.SelectedDocument.ID)
	assert.Equal(t, "memo about parking", set.SelectedDocument.Text)
}

func TestRecommendationService_Recommend_OutOfRange(t *testing.T) {
	svc := loadedExampleService(t)

	_, err := svc.Recommend(context.Background(), 5, domain.DefaultRecommendOptions())
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestRecommendationService_Recommend_NotLoaded(t *testing.T) {
	corpus, _, _ := newExampleCorpusService(t)
	svc := NewRecommendationService(corpus, fixedSampler{}, domain.DefaultRecommendOptions())

	_, err := svc.Recommend(context.Background(), 0, domain.DefaultRecommendOptions())
	assert.ErrorIs(t, err, domain.ErrCorpusNotLoaded)
}

func TestRecommendationService_Recommend_UniqueRequestIDs(t *testing.T) {
	svc := loadedExampleService(t)
	ctx := context.Background()

	a, err := svc.Recommend(ctx, 1, domain.DefaultRecommendOptions())
	require.NoError(t, err)
	b, err := svc.Recommend(ctx, 1, domain.DefaultRecommendOptions())
	require.NoError(t, err)

	assert.NotEqual(t, a.RequestID, b.RequestID)
}
