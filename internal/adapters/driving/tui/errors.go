package tui

import "errors"

// ErrMissingRecommendService is returned when the recommendation service is not provided.
var ErrMissingRecommendService = errors.New("tui: recommendation service is required")

// ErrMissingCorpusService is returned when the corpus service is not provided.
var ErrMissingCorpusService = errors.New("tui: corpus service is required")
