package analysers

import (
	"strings"
)

// NgramsName is the registry name of the n-gram stage.
const NgramsName = "ngrams"

// Ngrams expands terms into all contiguous word n-grams with lengths in [min, max].
// N-grams are joined by a single space.
type Ngrams struct {
	min int
	max int
}

// NewNgrams creates an n-gram stage. Callers must ensure 1 <= lo <= hi.
func NewNgrams(lo, hi int) *Ngrams {
	return &Ngrams{min: lo, max: hi}
}

// Name returns the stage name.
func (g *Ngrams) Name() string {
	return NgramsName
}

// Process emits unigrams first, then bigrams, up to max.
func (g *Ngrams) Process(_ string, terms []string) []string {
	if g.min == 1 && g.max == 1 {
		return terms
	}

	out := make([]string, 0, len(terms)*(g.max-g.min+1))
	for n := g.min; n <= g.max; n++ {
		for i := 0; i+n <= len(terms); i++ {
			if n == 1 {
				out = append(out, terms[i])
				continue
			}
			out = append(out, strings.Join(terms[i:i+n], " "))
		}
	}
	return out
}
