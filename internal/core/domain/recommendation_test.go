package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBands_Order(t *testing.T) {
	assert.Equal(t, []Band{BandTop, BandMedium, BandDiverse}, Bands())
}

func TestBand_Title(t *testing.T) {
	assert.Equal(t, "Highly Similar Documents", BandTop.Title())
	assert.Equal(t, "Medium Similarity Documents", BandMedium.Title())
	assert.Equal(t, "Diverse Documents", BandDiverse.Title())
	assert.Equal(t, "Unknown", Band("other").Title())
}

func TestDefaultRecommendOptions(t *testing.T) {
	opts := DefaultRecommendOptions()

	assert.Equal(t, 4, opts.TopN)
	assert.Equal(t, 3, opts.MediumN)
	assert.Equal(t, 3, opts.DiverseN)
	assert.Equal(t, 4, opts.MediumStartDivisor)
	assert.Equal(t, 2, opts.MediumEndDivisor)
	assert.Equal(t, 2, opts.DiverseShortlistFactor)
	assert.Equal(t, 120, opts.SnippetLength)
	assert.NoError(t, opts.Validate())
}

func TestRecommendOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *RecommendOptions)
	}{
		{"negative top", func(o *RecommendOptions) { o.TopN = -1 }},
		{"negative medium", func(o *RecommendOptions) { o.MediumN = -1 }},
		{"negative diverse", func(o *RecommendOptions) { o.DiverseN = -1 }},
		{"zero start divisor", func(o *RecommendOptions) { o.MediumStartDivisor = 0 }},
		{"zero end divisor", func(o *RecommendOptions) { o.MediumEndDivisor = 0 }},
		{"zero shortlist factor", func(o *RecommendOptions) { o.DiverseShortlistFactor = 0 }},
		{"negative snippet", func(o *RecommendOptions) { o.SnippetLength = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultRecommendOptions()
			tt.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrInvalidInput)
		})
	}
}

func TestRecommendOptions_Validate_ZeroBandsAllowed(t *testing.T) {
	opts := DefaultRecommendOptions()
	opts.TopN, opts.MediumN, opts.DiverseN = 0, 0, 0
	assert.NoError(t, opts.Validate())
}

func TestSnippet(t *testing.T) {
	text := strings.Repeat("Lorem ipsum ", 20)

	snippet := Snippet(text, 120)

	assert.Equal(t, text[:120]+"...", snippet)
	assert.Len(t, []rune(snippet), 123)
}

func TestSnippet_ShortText(t *testing.T) {
	assert.Equal(t, "short...", Snippet("short", 120))
	assert.Equal(t, "...", Snippet("", 120))
	assert.Equal(t, "...", Snippet("abc", 0))
}

func TestSnippet_MultiByte(t *testing.T) {
	assert.Equal(t, "héll...", Snippet("héllo wörld", 4))
	assert.Equal(t, "日本...", Snippet("日本語のテキスト", 2))
}

func TestRecommendationSet_ItemsFor(t *testing.T) {
	set := &RecommendationSet{
		Selected: 0,
		Top:      []int{1, 2},
		Medium:   []int{2, 3},
		Diverse:  []int{4},
		Items: []Recommendation{
			{Index: 1, ID: "b", Band: BandTop},
			{Index: 2, ID: "c", Band: BandTop},
			{Index: 3, ID: "d", Band: BandMedium},
			{Index: 4, ID: "e", Band: BandDiverse},
		},
	}

	top := set.ItemsFor(BandTop)
	assert.Len(t, top, 2)
	assert.Equal(t, "b", top[0].ID)

	medium := set.ItemsFor(BandMedium)
	assert.Len(t, medium, 2)
	assert.Equal(t, "c", medium[0].ID, "index shared with top is listed in both sections")
	assert.Equal(t, "d", medium[1].ID)

	assert.Len(t, set.ItemsFor(BandDiverse), 1)
	assert.Empty(t, set.ItemsFor(Band("unknown")))
}
