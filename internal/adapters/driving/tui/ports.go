// Package tui provides an interactive terminal user interface for docrec.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docrec/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Recommend selects related documents.
	Recommend driving.RecommendationService

	// Corpus loads and serves the document table.
	Corpus driving.CorpusService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(recommend driving.RecommendationService, corpus driving.CorpusService) *Ports {
	return &Ports{
		Recommend: recommend,
		Corpus:    corpus,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	return nil
}
