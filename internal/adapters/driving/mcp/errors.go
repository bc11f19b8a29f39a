// Package mcp provides an MCP (Model Context Protocol) server adapter for docrec.
// It lets AI assistants request recommendations and read documents of the loaded corpus.
package mcp

import "errors"

var (
	// ErrMissingRecommendService is returned when the recommendation service is not provided.
	ErrMissingRecommendService = errors.New("mcp: recommendation service is required")

	// ErrMissingCorpusService is returned when the corpus service is not provided.
	ErrMissingCorpusService = errors.New("mcp: corpus service is required")
)
