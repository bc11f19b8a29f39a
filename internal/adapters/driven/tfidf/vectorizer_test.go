package tfidf

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docrec/internal/analysers"
	"github.com/custodia-labs/docrec/internal/core/domain"
)

// splitAnalyser implements driven.TextAnalyser with whitespace splitting.
type splitAnalyser struct{}

func (splitAnalyser) Analyse(text string) []string {
	return strings.Fields(text)
}

func settings(minDF int, maxDF float64) domain.VectorizerSettings {
	return domain.VectorizerSettings{
		Analysers: []string{"split"},
		StopWords: "none",
		NgramMin:  1,
		NgramMax:  1,
		MinDF:     minDF,
		MaxDF:     maxDF,
	}
}

func TestVectorizer_Fit_IDF(t *testing.T) {
	v := NewVectorizer(splitAnalyser{}, settings(1, 1.0))

	vocab, counts, err := v.Fit(context.Background(), []string{"a b", "a c", "a b b"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, vocab.Terms)
	assert.InDelta(t, 1.0, vocab.IDF[0], 1e-12)
	assert.InDelta(t, math.Log(4.0/3.0)+1, vocab.IDF[1], 1e-12)
	assert.InDelta(t, math.Log(2.0)+1, vocab.IDF[2], 1e-12)
	assert.Equal(t, 2, counts[2]["b"])

	_, ok := vocab.Index("missing")
	assert.False(t, ok)
}

func TestVectorizer_Fit_Pruning(t *testing.T) {
	texts := []string{"common rare1 shared", "common shared", "common other", "common shared"}

	vocab, _, err := NewVectorizer(splitAnalyser{}, settings(2, 0.9)).Fit(context.Background(), texts)

	require.NoError(t, err)
	// common is in every document (above 0.9), rare1 and other are below min_df.
	assert.Equal(t, []string{"shared"}, vocab.Terms)
}

func TestVectorizer_Fit_AbsoluteMaxDF(t *testing.T) {
	texts := []string{"x y", "x y", "x z", "z"}

	vocab, _, err := NewVectorizer(splitAnalyser{}, settings(1, 2)).Fit(context.Background(), texts)

	require.NoError(t, err)
	assert.Equal(t, []string{"y", "z"}, vocab.Terms)
}

func TestVectorizer_Fit_EmptyVocabulary(t *testing.T) {
	_, _, err := NewVectorizer(splitAnalyser{}, settings(2, 1.0)).Fit(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, domain.ErrEmptyVocabulary)

	_, _, err = NewVectorizer(splitAnalyser{}, settings(1, 1.0)).Fit(context.Background(), []string{"", " "})
	assert.ErrorIs(t, err, domain.ErrEmptyVocabulary)
}

func TestVectorizer_Fit_ConflictingBounds(t *testing.T) {
	_, _, err := NewVectorizer(splitAnalyser{}, settings(3, 0.5)).Fit(context.Background(), []string{"a", "a", "a", "a"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVectorizer_Build_Properties(t *testing.T) {
	texts := []string{
		"quarterly sales report for the north region",
		"quarterly sales report for the south region",
		"office relocation memo for staff",
		"staff parking memo",
		"",
	}

	m, err := NewVectorizer(splitAnalyser{}, settings(1, 1.0)).Build(context.Background(), texts)

	require.NoError(t, err)
	require.Equal(t, 5, m.Size())
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			assert.InDelta(t, m.At(i, j), m.At(j, i), 1e-12, "symmetry at %d,%d", i, j)
			assert.GreaterOrEqual(t, m.At(i, j), 0.0)
			assert.LessOrEqual(t, m.At(i, j), 1.0)
		}
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1.0, m.At(i, i))
	}
	assert.Equal(t, 0.0, m.At(4, 4), "empty document has a zero vector")

	assert.Greater(t, m.At(0, 1), m.At(0, 2))
	assert.Greater(t, m.At(2, 3), m.At(0, 3))
	assert.Equal(t, 0.0, m.At(0, 3))
}

func TestVectorizer_Build_IdenticalTexts(t *testing.T) {
	m, err := NewVectorizer(splitAnalyser{}, settings(1, 1.0)).Build(context.Background(), []string{"a b c", "a b c", "d"})

	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.At(0, 1), 1e-9)
	assert.Equal(t, 0.0, m.At(0, 2))
}

func TestVectorizer_Build_KnownCosine(t *testing.T) {
	// Both terms occur in every document, so all IDF weights are 1.
	m, err := NewVectorizer(splitAnalyser{}, settings(1, 1.0)).Build(context.Background(), []string{"a a b", "a b b"})

	require.NoError(t, err)
	assert.InDelta(t, 4.0/5.0, m.At(0, 1), 1e-12)
}

func TestVectorizer_Build_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVectorizer(splitAnalyser{}, settings(1, 1.0)).Build(ctx, []string{"a", "a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVectorizer_Build_WithAnalyserPipeline(t *testing.T) {
	s := domain.DefaultAppSettings().Vectorizer
	s.MinDF = 1
	p, err := analysers.DefaultRegistry().BuildPipeline(s.Analysers, analysers.ConfigFromSettings(s))
	require.NoError(t, err)

	m, err := NewVectorizer(p, s).Build(context.Background(), []string{
		"The Annual Budget Report",
		"annual budget report, revised",
		"Holiday party invitation",
	})

	require.NoError(t, err)
	assert.Greater(t, m.At(0, 1), 0.5)
	assert.Equal(t, 0.0, m.At(0, 2))
}

func TestVectorizer_Signature(t *testing.T) {
	a := NewVectorizer(splitAnalyser{}, settings(1, 1.0))
	b := NewVectorizer(splitAnalyser{}, settings(2, 1.0))

	assert.Equal(t, a.Signature(), NewVectorizer(splitAnalyser{}, settings(1, 1.0)).Signature())
	assert.NotEqual(t, a.Signature(), b.Signature())
	assert.Contains(t, a.Signature(), "tfidf")
}
