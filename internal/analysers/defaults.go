package analysers

import (
	"fmt"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// Config keys understood by the built-in stages.
const (
	ConfigStopWords = "stop_words"
	ConfigNgramMin  = "ngram_min"
	ConfigNgramMax  = "ngram_max"
)

// RegisterDefaults registers all built-in stages with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(TokeniserName, buildTokeniser)
	r.Register(LowercaseName, buildLowercase)
	r.Register(StopWordsName, buildStopWords)
	r.Register(NgramsName, buildNgrams)
}

// DefaultRegistry returns a registry with the built-in stages.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// ConfigFromSettings converts vectoriser settings to stage config.
func ConfigFromSettings(s domain.VectorizerSettings) map[string]any {
	return map[string]any{
		ConfigStopWords: s.StopWords,
		ConfigNgramMin:  s.NgramMin,
		ConfigNgramMax:  s.NgramMax,
	}
}

func buildTokeniser(_ map[string]any) (driven.AnalysisStage, error) {
	return NewTokeniser(), nil
}

func buildLowercase(_ map[string]any) (driven.AnalysisStage, error) {
	return NewLowercase(), nil
}

// buildStopWords supports:
//   - stop_words (string): "english" (default) or "none"
func buildStopWords(cfg map[string]any) (driven.AnalysisStage, error) {
	list := getStringFromConfig(cfg, ConfigStopWords)
	if list == "" {
		list = StopWordsEnglish
	}
	return NewStopWords(list)
}

// buildNgrams supports:
//   - ngram_min (int): smallest n-gram length (default: 1)
//   - ngram_max (int): largest n-gram length (default: 1)
func buildNgrams(cfg map[string]any) (driven.AnalysisStage, error) {
	lo := getIntFromConfig(cfg, ConfigNgramMin)
	if lo == 0 {
		lo = 1
	}
	hi := getIntFromConfig(cfg, ConfigNgramMax)
	if hi == 0 {
		hi = lo
	}
	if lo < 1 || hi < lo {
		return nil, fmt.Errorf("%w: ngram range (%d, %d)", domain.ErrInvalidInput, lo, hi)
	}
	return NewNgrams(lo, hi), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func getStringFromConfig(cfg map[string]any, key string) string {
	s, _ := cfg[key].(string)
	return s
}
