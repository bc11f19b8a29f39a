package domain

import "fmt"

// Ellipsis is appended to every snippet and preview.
const Ellipsis = "..."

// Band identifies one of the three output categories of a recommendation.
type Band string

// Available bands, in combination order.
const (
	// BandTop holds the most similar documents, in descending score order.
	BandTop Band = "top"

	// BandMedium holds a random sample from the second quarter of the ranking.
	BandMedium Band = "medium"

	// BandDiverse holds a random sample of similar documents of another type.
	BandDiverse Band = "diverse"
)

// Bands lists every band in combination order.
func Bands() []Band {
	return []Band{BandTop, BandMedium, BandDiverse}
}

// Title returns the section heading used when printing the band.
func (b Band) Title() string {
	switch b {
	case BandTop:
		return "Highly Similar Documents"
	case BandMedium:
		return "Medium Similarity Documents"
	case BandDiverse:
		return "Diverse Documents"
	default:
		return "Unknown"
	}
}

// String returns the string representation.
func (b Band) String() string {
	return string(b)
}

// RecommendOptions configures a recommendation request.
type RecommendOptions struct {
	// TopN is the size of the deterministic top band.
	TopN int

	// MediumN is the number of documents sampled from the medium slice.
	MediumN int

	// DiverseN is the number of documents sampled from the diverse shortlist.
	DiverseN int

	// MediumStartDivisor and MediumEndDivisor bound the medium slice to
	// ranks [N/MediumStartDivisor, N/MediumEndDivisor).
	MediumStartDivisor int
	MediumEndDivisor   int

	// DiverseShortlistFactor sizes the diverse shortlist as a multiple of DiverseN.
	DiverseShortlistFactor int

	// SnippetLength is the number of characters kept in each snippet.
	SnippetLength int
}

// DefaultRecommendOptions returns the stock band sizes and heuristics.
func DefaultRecommendOptions() RecommendOptions {
	return RecommendOptions{
		TopN:                   4,
		MediumN:                3,
		DiverseN:               3,
		MediumStartDivisor:     4,
		MediumEndDivisor:       2,
		DiverseShortlistFactor: 2,
		SnippetLength:          120,
	}
}

// Validate checks that every field is usable.
func (o RecommendOptions) Validate() error {
	if o.TopN < 0 || o.MediumN < 0 || o.DiverseN < 0 {
		return fmt.Errorf("%w: band sizes must be non-negative (top=%d medium=%d diverse=%d)",
			ErrInvalidInput, o.TopN, o.MediumN, o.DiverseN)
	}
	if o.MediumStartDivisor <= 0 || o.MediumEndDivisor <= 0 {
		return fmt.Errorf("%w: medium divisors must be positive (start=%d end=%d)",
			ErrInvalidInput, o.MediumStartDivisor, o.MediumEndDivisor)
	}
	if o.DiverseShortlistFactor < 1 {
		return fmt.Errorf("%w: diverse shortlist factor must be at least 1, got %d",
			ErrInvalidInput, o.DiverseShortlistFactor)
	}
	if o.SnippetLength < 0 {
		return fmt.Errorf("%w: snippet length must be non-negative, got %d", ErrInvalidInput, o.SnippetLength)
	}
	return nil
}

// BandSelection is the raw output of the selector: document indices per band
// and their de-duplicated combination.
type BandSelection struct {
	Top      []int
	Medium   []int
	Diverse  []int
	Combined []int
}

// Recommendation is a resolved entry of the combined list.
type Recommendation struct {
	// Index is the document's position in the table.
	Index int `json:"index"`

	// ID is the document identifier.
	ID string `json:"id"`

	// Type is the document category.
	Type string `json:"type"`

	// Snippet is the bounded preview of the canonical text.
	Snippet string `json:"snippet"`

	// Score is the similarity to the selected document.
	Score float64 `json:"score"`

	// Band is the earliest band the document appeared in.
	Band Band `json:"band"`
}

// RecommendationSet is the result of one recommendation request.
type RecommendationSet struct {
	// RequestID identifies the request in logs and JSON output.
	RequestID string `json:"request_id"`

	// Selected is the index of the document recommendations were made for.
	Selected int `json:"selected"`

	// SelectedID is the identifier of the selected document.
	SelectedID string `json:"selected_id"`

	// SelectedDocument is the selected row from the snapshot the set was ranked against.
	SelectedDocument *Document `json:"-"`

	Top     []int `json:"top"`
	Medium  []int `json:"medium"`
	Diverse []int `json:"diverse"`

	// Items is the combined, de-duplicated list in top, medium, diverse order.
	Items []Recommendation `json:"items"`
}

// Indices returns the index list of a band.
func (s *RecommendationSet) Indices(b Band) []int {
	switch b {
	case BandTop:
		return s.Top
	case BandMedium:
		return s.Medium
	case BandDiverse:
		return s.Diverse
	default:
		return nil
	}
}

// ItemsFor resolves every index of a band to its Recommendation.
// A document listed in two bands is returned for both, although Items holds it once.
func (s *RecommendationSet) ItemsFor(b Band) []Recommendation {
	byIndex := make(map[int]Recommendation, len(s.Items))
	for _, item := range s.Items {
		byIndex[item.Index] = item
	}

	indices := s.Indices(b)
	out := make([]Recommendation, 0, len(indices))
	for _, idx := range indices {
		if item, ok := byIndex[idx]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Snippet returns the first n characters of text followed by Ellipsis.
// Characters are counted as runes so multi-byte text is never split.
func Snippet(text string, n int) string {
	if n < 0 {
		n = 0
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i] + Ellipsis
		}
		count++
	}
	return text + Ellipsis
}
