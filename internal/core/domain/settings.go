package domain

import "fmt"

const unknownDescription = "Unknown"

// CorpusSource identifies where the document table is read from.
type CorpusSource string

// Available corpus sources.
const (
	// CorpusSourceCSV reads the document table from a CSV file.
	CorpusSourceCSV CorpusSource = "csv"

	// CorpusSourceSQLite reads a table previously persisted by `docrec index`.
	CorpusSourceSQLite CorpusSource = "sqlite"
)

// IsValid returns true if the source is recognised.
func (s CorpusSource) IsValid() bool {
	return s == CorpusSourceCSV || s == CorpusSourceSQLite
}

// String returns the string representation.
func (s CorpusSource) String() string {
	return string(s)
}

// Description returns a human-readable description of the source.
func (s CorpusSource) Description() string {
	switch s {
	case CorpusSourceCSV:
		return "CSV file"
	case CorpusSourceSQLite:
		return "SQLite index"
	default:
		return unknownDescription
	}
}

// CorpusSettings describes the document table.
type CorpusSettings struct {
	// Source selects the loader.
	Source CorpusSource

	// Path is the CSV document table.
	Path string

	// SnippetPath is an optional second CSV supplying snippet text by ID.
	// Empty means snippets come from Path.
	SnippetPath string

	// Column names of the CSV table.
	IDColumn   string
	TypeColumn string
	TextColumn string
	SizeColumn string
	PathColumn string
}

// VectorizerSettings configures text analysis and TF-IDF weighting.
type VectorizerSettings struct {
	// Analysers are the text analysis stages, in order.
	Analysers []string

	// StopWords names the stop word list ("english" or "none").
	StopWords string

	// NgramMin and NgramMax bound the word n-gram sizes.
	NgramMin int
	NgramMax int

	// MinDF drops terms that appear in fewer documents.
	MinDF int

	// MaxDF drops terms that appear in more documents. Values up to 1.0 are a
	// proportion of the corpus, larger values an absolute count.
	MaxDF float64
}

// RecommendSettings holds the band parameters and display lengths.
type RecommendSettings struct {
	TopN                   int
	MediumN                int
	DiverseN               int
	MediumStartDivisor     int
	MediumEndDivisor       int
	DiverseShortlistFactor int
	SnippetLength          int

	// PreviewLength is the number of characters shown for the selected document.
	PreviewLength int

	// Seed makes sampling reproducible. Zero means a fresh random seed per run.
	Seed int64
}

// Options converts the settings into request options.
func (r RecommendSettings) Options() RecommendOptions {
	return RecommendOptions{
		TopN:                   r.TopN,
		MediumN:                r.MediumN,
		DiverseN:               r.DiverseN,
		MediumStartDivisor:     r.MediumStartDivisor,
		MediumEndDivisor:       r.MediumEndDivisor,
		DiverseShortlistFactor: r.DiverseShortlistFactor,
		SnippetLength:          r.SnippetLength,
	}
}

// CacheSettings controls the SQLite similarity cache.
type CacheSettings struct {
	// Enabled stores computed matrices and reuses them when the corpus is unchanged.
	Enabled bool

	// Dir is the data directory. Empty means ~/.docrec/data.
	Dir string
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Corpus     CorpusSettings
	Vectorizer VectorizerSettings
	Recommend  RecommendSettings
	Cache      CacheSettings
}

// DefaultAppSettings returns settings matching the stock document pipeline.
func DefaultAppSettings() AppSettings {
	opts := DefaultRecommendOptions()
	return AppSettings{
		Corpus: CorpusSettings{
			Source:     CorpusSourceCSV,
			Path:       "docs_stage_3_preprocessed.csv",
			IDColumn:   "DocId",
			TypeColumn: "DocType",
			TextColumn: "DocText",
			SizeColumn: "FileSize",
			PathColumn: "FilePath",
		},
		Vectorizer: VectorizerSettings{
			Analysers: []string{"tokenise", "lowercase", "stopwords", "ngrams"},
			StopWords: "english",
			NgramMin:  1,
			NgramMax:  2,
			MinDF:     2,
			MaxDF:     0.9,
		},
		Recommend: RecommendSettings{
			TopN:                   opts.TopN,
			MediumN:                opts.MediumN,
			DiverseN:               opts.DiverseN,
			MediumStartDivisor:     opts.MediumStartDivisor,
			MediumEndDivisor:       opts.MediumEndDivisor,
			DiverseShortlistFactor: opts.DiverseShortlistFactor,
			SnippetLength:          opts.SnippetLength,
			PreviewLength:          350,
		},
	}
}

// Validate checks settings that would make loading or recommending fail.
func (s *AppSettings) Validate() error {
	if !s.Corpus.Source.IsValid() {
		return fmt.Errorf("%w: corpus source %q", ErrUnsupportedType, s.Corpus.Source)
	}
	if s.Vectorizer.NgramMin < 1 || s.Vectorizer.NgramMax < s.Vectorizer.NgramMin {
		return fmt.Errorf("%w: ngram range (%d, %d)", ErrInvalidInput, s.Vectorizer.NgramMin, s.Vectorizer.NgramMax)
	}
	if s.Vectorizer.MinDF < 1 || s.Vectorizer.MaxDF <= 0 {
		return fmt.Errorf("%w: document frequency bounds min_df=%d max_df=%g",
			ErrInvalidInput, s.Vectorizer.MinDF, s.Vectorizer.MaxDF)
	}
	if s.Recommend.PreviewLength < 0 {
		return fmt.Errorf("%w: preview length %d", ErrInvalidInput, s.Recommend.PreviewLength)
	}
	return s.Recommend.Options().Validate()
}
