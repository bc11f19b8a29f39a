package mcp

import (
	"github.com/custodia-labs/docrec/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Recommend selects related documents.
	Recommend driving.RecommendationService

	// Corpus serves the loaded document table.
	Corpus driving.CorpusService
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
