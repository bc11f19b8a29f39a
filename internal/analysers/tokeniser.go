package analysers

import (
	"regexp"
)

// TokeniserName is the registry name of the tokeniser stage.
const TokeniserName = "tokenise"

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokeniser splits text into word tokens. Single-character tokens are dropped.
type Tokeniser struct{}

// NewTokeniser creates a tokeniser stage.
func NewTokeniser() *Tokeniser {
	return &Tokeniser{}
}

// Name returns the stage name.
func (t *Tokeniser) Name() string {
	return TokeniserName
}

// Process ignores incoming terms and tokenises text.
func (t *Tokeniser) Process(text string, _ []string) []string {
	return tokenPattern.FindAllString(text, -1)
}
