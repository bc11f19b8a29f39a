package tfidf

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
	"github.com/custodia-labs/docrec/internal/logger"
)

// Ensure Vectorizer implements the interface.
var _ driven.SimilarityBuilder = (*Vectorizer)(nil)

// Vectorizer computes TF-IDF vectors and their pairwise cosine similarity.
type Vectorizer struct {
	analyser driven.TextAnalyser
	settings domain.VectorizerSettings
}

// NewVectorizer creates a vectorizer. settings supply the document frequency
// bounds and are folded into Signature.
func NewVectorizer(analyser driven.TextAnalyser, settings domain.VectorizerSettings) *Vectorizer {
	return &Vectorizer{
		analyser: analyser,
		settings: settings,
	}
}

// Signature identifies the settings that shape the matrix.
func (v *Vectorizer) Signature() string {
	s := v.settings
	return fmt.Sprintf("tfidf/v1;analysers=%s;stop=%s;ngram=%d-%d;min_df=%d;max_df=%g",
		strings.Join(s.Analysers, ","), s.StopWords, s.NgramMin, s.NgramMax, s.MinDF, s.MaxDF)
}

// Vocabulary is the ordered set of retained terms with their IDF weights.
type Vocabulary struct {
	Terms []string
	IDF   []float64
	index map[string]int
}

// Index returns the column of term, or false if it was pruned.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.Terms)
}

// entry is one non-zero component of a sparse document vector.
type entry struct {
	term   int
	weight float64
}

// Fit analyses texts and returns the pruned vocabulary and the term counts per document.
func (v *Vectorizer) Fit(ctx context.Context, texts []string) (*Vocabulary, []map[string]int, error) {
	n := len(texts)
	counts := make([]map[string]int, n)
	df := make(map[string]int)

	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		c := make(map[string]int)
		for _, term := range v.analyser.Analyse(text) {
			c[term]++
		}
		for term := range c {
			df[term]++
		}
		counts[i] = c
	}

	minCount := float64(max(v.settings.MinDF, 1))
	maxCount := v.settings.MaxDF
	if maxCount <= 1 {
		maxCount *= float64(n)
	}
	if maxCount < minCount {
		return nil, nil, fmt.Errorf("%w: max_df=%g keeps fewer documents than min_df=%d",
			domain.ErrInvalidInput, v.settings.MaxDF, v.settings.MinDF)
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if c := float64(count); c >= minCount && c <= maxCount {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, nil, domain.ErrEmptyVocabulary
	}
	sort.Strings(terms)

	vocab := &Vocabulary{
		Terms: terms,
		IDF:   make([]float64, len(terms)),
		index: make(map[string]int, len(terms)),
	}
	for i, term := range terms {
		vocab.index[term] = i
		vocab.IDF[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	logger.Debug("Vocabulary: %d of %d terms kept", len(terms), len(df))
	return vocab, counts, nil
}

// Build returns the cosine similarity matrix of texts.
func (v *Vectorizer) Build(ctx context.Context, texts []string) (*domain.SimilarityMatrix, error) {
	vocab, counts, err := v.Fit(ctx, texts)
	if err != nil {
		return nil, err
	}

	vectors := make([][]entry, len(texts))
	for i, c := range counts {
		vectors[i] = weigh(vocab, c)
	}

	return cosine(ctx, vectors, vocab.Len())
}

// weigh converts term counts to an L2-normalised TF-IDF vector sorted by term.
func weigh(vocab *Vocabulary, counts map[string]int) []entry {
	vec := make([]entry, 0, len(counts))
	var norm float64
	for term, count := range counts {
		idx, ok := vocab.Index(term)
		if !ok {
			continue
		}
		w := float64(count) * vocab.IDF[idx]
		vec = append(vec, entry{term: idx, weight: w})
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i].weight /= norm
		}
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].term < vec[b].term })
	return vec
}

// cosine multiplies the normalised vectors through an inverted index.
func cosine(ctx context.Context, vectors [][]entry, terms int) (*domain.SimilarityMatrix, error) {
	n := len(vectors)

	type posting struct {
		doc    int
		weight float64
	}
	postings := make([][]posting, terms)
	for doc, vec := range vectors {
		for _, e := range vec {
			postings[e.term] = append(postings[e.term], posting{doc: doc, weight: e.weight})
		}
	}

	m := domain.NewSimilarityMatrix(n)
	acc := make([]float64, n)
	for i, vec := range vectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		clear(acc)
		for _, e := range vec {
			for _, p := range postings[e.term] {
				if p.doc > i {
					acc[p.doc] += e.weight * p.weight
				}
			}
		}
		if len(vec) > 0 {
			m.SetSymmetric(i, i, 1)
		}
		for j := i + 1; j < n; j++ {
			if acc[j] != 0 {
				m.SetSymmetric(i, j, clamp(acc[j]))
			}
		}
	}
	return m, nil
}

func clamp(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
