// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docrec/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDocuments lists the loaded documents.
	ViewDocuments ViewType = iota
	// ViewRecommend shows the selected document and its recommendations.
	ViewRecommend
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDocuments:
		return "documents"
	case ViewRecommend:
		return "recommend"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// CorpusLoaded carries the loaded corpus snapshot.
type CorpusLoaded struct {
	Corpus *domain.Corpus
	Err    error
}

// DocumentChosen is sent when the user picks a document to recommend for.
type DocumentChosen struct {
	Index int
}

// RecommendationsLoaded carries a recommendation set back to the model.
type RecommendationsLoaded struct {
	Index    int
	Document *domain.Document
	Set      *domain.RecommendationSet
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
