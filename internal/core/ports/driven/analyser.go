package driven

// AnalysisStage transforms text into terms.
// Stages are chained in a pipeline (e.g., tokenising, lowercasing, n-grams).
type AnalysisStage interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Process takes the raw text and the terms produced so far.
	// A stage that creates terms (e.g., a tokeniser) ignores terms and reads text.
	// A stage that modifies terms (e.g., stop word removal) ignores text.
	Process(text string, terms []string) []string
}

// TextAnalyser turns a document text into the terms counted by the vectoriser.
type TextAnalyser interface {
	Analyse(text string) []string
}
