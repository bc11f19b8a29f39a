package driving

import (
	"context"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

// RecommendationService produces related-document recommendations.
type RecommendationService interface {
	// Recommend returns the top, medium and diverse bands for the document at index.
	// An invalid index fails with domain.ErrOutOfRange and produces no output.
	// The set's SelectedDocument comes from the snapshot the bands were ranked against.
	Recommend(ctx context.Context, index int, opts domain.RecommendOptions) (*domain.RecommendationSet, error)

	// DefaultOptions returns the configured band sizes and heuristics.
	DefaultOptions() domain.RecommendOptions
}
