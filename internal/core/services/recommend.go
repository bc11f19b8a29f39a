package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
	"github.com/custodia-labs/docrec/internal/core/ports/driving"
	"github.com/custodia-labs/docrec/internal/logger"
)

// Ensure RecommendationService implements the interface.
var _ driving.RecommendationService = (*RecommendationService)(nil)

// RecommendationService selects bands over the current corpus snapshot and
// resolves them to document metadata and snippets.
type RecommendationService struct {
	corpus   driving.CorpusService
	sampler  driven.Sampler
	defaults domain.RecommendOptions
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	corpus driving.CorpusService,
	sampler driven.Sampler,
	defaults domain.RecommendOptions,
) *RecommendationService {
	return &RecommendationService{
		corpus:   corpus,
		sampler:  sampler,
		defaults: defaults,
	}
}

// DefaultOptions returns the configured band sizes and heuristics.
func (s *RecommendationService) DefaultOptions() domain.RecommendOptions {
	return s.defaults
}

// Recommend returns the recommendation set for the document at index.
func (s *RecommendationService) Recommend(
	_ context.Context, index int, opts domain.RecommendOptions,
) (*domain.RecommendationSet, error) {
	logger.Section("Recommendation")

	corpus, err := s.corpus.Current()
	if err != nil {
		return nil, err
	}

	sel, err := SelectBands(corpus.Matrix, index, corpus.Types(), opts, s.sampler)
	if err != nil {
		return nil, err
	}

	logger.Debug("Index %d (%s): top=%v medium=%v diverse=%v",
		index, corpus.Documents[index].ID, sel.Top, sel.Medium, sel.Diverse)

	selected := corpus.Documents[index]
	set := &domain.RecommendationSet{
		RequestID:        uuid.New().String(),
		Selected:         index,
		SelectedID:       selected.ID,
		SelectedDocument: &selected,
		Top:              sel.Top,
		Medium:           sel.Medium,
		Diverse:          sel.Diverse,
		Items:            make([]domain.Recommendation, 0, len(sel.Combined)),
	}

	bandOf := earliestBand(sel)
	for _, idx := range sel.Combined {
		doc := corpus.Documents[idx]

		set.Items = append(set.Items, domain.Recommendation{
			Index:   idx,
			ID:      doc.ID,
			Type:    doc.Type,
			Snippet: domain.Snippet(snippetText(corpus, &doc), opts.SnippetLength),
			Score:   corpus.Matrix.At(index, idx),
			Band:    bandOf[idx],
		})
	}

	logger.Info("Request %s: %d recommendations for %s", set.RequestID, len(set.Items), set.SelectedID)
	return set, nil
}

// snippetText reads the snippet text loaded with corpus, falling back to
// the ranking table's text when the snippet table has no entry for doc.
func snippetText(corpus *domain.Corpus, doc *domain.Document) string {
	if corpus.Texts == nil {
		return doc.Text
	}
	if text, ok := corpus.Text(doc.ID); ok {
		return text
	}
	logger.Warn("No snippet text for %s, using document text", doc.ID)
	return doc.Text
}

// earliestBand maps each selected index to the first band that contains it.
func earliestBand(sel domain.BandSelection) map[int]domain.Band {
	bands := make(map[int]domain.Band, len(sel.Combined))
	assign := func(band domain.Band, indices []int) {
		for _, idx := range indices {
			if _, ok := bands[idx]; !ok {
				bands[idx] = band
			}
		}
	}
	assign(domain.BandTop, sel.Top)
	assign(domain.BandMedium, sel.Medium)
	assign(domain.BandDiverse, sel.Diverse)
	return bands
}
