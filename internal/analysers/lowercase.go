package analysers

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// LowercaseName is the registry name of the case folding stage.
const LowercaseName = "lowercase"

// Lowercase case-folds terms after NFKC normalisation, so "Straße" and
// "STRASSE" or full-width and ASCII forms count as the same term.
type Lowercase struct{}

// NewLowercase creates a case folding stage.
func NewLowercase() *Lowercase {
	return &Lowercase{}
}

// Name returns the stage name.
func (l *Lowercase) Name() string {
	return LowercaseName
}

// Process folds every term. A Caser is stateful, so each call gets its own.
func (l *Lowercase) Process(_ string, terms []string) []string {
	fold := cases.Fold()
	out := make([]string, len(terms))
	for i, term := range terms {
		out[i] = fold.String(norm.NFKC.String(term))
	}
	return out
}
