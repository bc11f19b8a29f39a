package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
	"github.com/custodia-labs/docrec/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCorpusSource      = "corpus.source"
	keyCorpusPath        = "corpus.path"
	keyCorpusSnippetPath = "corpus.snippet_path"
	keyCorpusIDColumn    = "corpus.id_column"
	keyCorpusTypeColumn  = "corpus.type_column"
	keyCorpusTextColumn  = "corpus.text_column"
	keyCorpusSizeColumn  = "corpus.size_column"
	keyCorpusPathColumn  = "corpus.path_column"

	keyVecAnalysers = "vectorizer.analysers"
	keyVecStopWords = "vectorizer.stop_words"
	keyVecNgramMin  = "vectorizer.ngram_min"
	keyVecNgramMax  = "vectorizer.ngram_max"
	keyVecMinDF     = "vectorizer.min_df"
	keyVecMaxDF     = "vectorizer.max_df"

	keyRecTopN          = "recommend.top_n"
	keyRecMediumN       = "recommend.medium_n"
	keyRecDiverseN      = "recommend.diverse_n"
	keyRecMediumStart   = "recommend.medium_start_divisor"
	keyRecMediumEnd     = "recommend.medium_end_divisor"
	keyRecShortlist     = "recommend.diverse_shortlist_factor"
	keyRecSnippetLength = "recommend.snippet_length"
	keyRecPreviewLength = "recommend.preview_length"
	keyRecSeed          = "recommend.seed"

	keyCacheEnabled = "cache.enabled"
	keyCacheDir     = "cache.dir"
)

// settingKind is how a setting's raw string is parsed.
type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindFloat
	kindBool
	kindList
)

// settingKeys lists every recognised key in display order.
var settingKeys = []struct {
	key  string
	kind settingKind
}{
	{keyCorpusSource, kindString},
	{keyCorpusPath, kindString},
	{keyCorpusSnippetPath, kindString},
	{keyCorpusIDColumn, kindString},
	{keyCorpusTypeColumn, kindString},
	{keyCorpusTextColumn, kindString},
	{keyCorpusSizeColumn, kindString},
	{keyCorpusPathColumn, kindString},
	{keyVecAnalysers, kindList},
	{keyVecStopWords, kindString},
	{keyVecNgramMin, kindInt},
	{keyVecNgramMax, kindInt},
	{keyVecMinDF, kindInt},
	{keyVecMaxDF, kindFloat},
	{keyRecTopN, kindInt},
	{keyRecMediumN, kindInt},
	{keyRecDiverseN, kindInt},
	{keyRecMediumStart, kindInt},
	{keyRecMediumEnd, kindInt},
	{keyRecShortlist, kindInt},
	{keyRecSnippetLength, kindInt},
	{keyRecPreviewLength, kindInt},
	{keyRecSeed, kindInt},
	{keyCacheEnabled, kindBool},
	{keyCacheDir, kindString},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	d := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Corpus: domain.CorpusSettings{
			Source:      domain.CorpusSource(s.getString(keyCorpusSource, d.Corpus.Source.String())),
			Path:        s.getString(keyCorpusPath, d.Corpus.Path),
			SnippetPath: s.configStore.GetString(keyCorpusSnippetPath), // Empty means same table
			IDColumn:    s.getString(keyCorpusIDColumn, d.Corpus.IDColumn),
			TypeColumn:  s.getString(keyCorpusTypeColumn, d.Corpus.TypeColumn),
			TextColumn:  s.getString(keyCorpusTextColumn, d.Corpus.TextColumn),
			SizeColumn:  s.getString(keyCorpusSizeColumn, d.Corpus.SizeColumn),
			PathColumn:  s.getString(keyCorpusPathColumn, d.Corpus.PathColumn),
		},
		Vectorizer: domain.VectorizerSettings{
			Analysers: s.getStringSlice(keyVecAnalysers, d.Vectorizer.Analysers),
			StopWords: s.getString(keyVecStopWords, d.Vectorizer.StopWords),
			NgramMin:  s.getInt(keyVecNgramMin, d.Vectorizer.NgramMin),
			NgramMax:  s.getInt(keyVecNgramMax, d.Vectorizer.NgramMax),
			MinDF:     s.getInt(keyVecMinDF, d.Vectorizer.MinDF),
			MaxDF:     s.getFloat(keyVecMaxDF, d.Vectorizer.MaxDF),
		},
		Recommend: domain.RecommendSettings{
			TopN:                   s.getInt(keyRecTopN, d.Recommend.TopN),
			MediumN:                s.getInt(keyRecMediumN, d.Recommend.MediumN),
			DiverseN:               s.getInt(keyRecDiverseN, d.Recommend.DiverseN),
			MediumStartDivisor:     s.getInt(keyRecMediumStart, d.Recommend.MediumStartDivisor),
			MediumEndDivisor:       s.getInt(keyRecMediumEnd, d.Recommend.MediumEndDivisor),
			DiverseShortlistFactor: s.getInt(keyRecShortlist, d.Recommend.DiverseShortlistFactor),
			SnippetLength:          s.getInt(keyRecSnippetLength, d.Recommend.SnippetLength),
			PreviewLength:          s.getInt(keyRecPreviewLength, d.Recommend.PreviewLength),
			Seed:                   int64(s.configStore.GetInt(keyRecSeed)),
		},
		Cache: domain.CacheSettings{
			Enabled: s.configStore.GetBool(keyCacheEnabled),
			Dir:     s.configStore.GetString(keyCacheDir),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		keyCorpusSource:      settings.Corpus.Source.String(),
		keyCorpusPath:        settings.Corpus.Path,
		keyCorpusSnippetPath: settings.Corpus.SnippetPath,
		keyCorpusIDColumn:    settings.Corpus.IDColumn,
		keyCorpusTypeColumn:  settings.Corpus.TypeColumn,
		keyCorpusTextColumn:  settings.Corpus.TextColumn,
		keyCorpusSizeColumn:  settings.Corpus.SizeColumn,
		keyCorpusPathColumn:  settings.Corpus.PathColumn,
		keyVecAnalysers:      settings.Vectorizer.Analysers,
		keyVecStopWords:      settings.Vectorizer.StopWords,
		keyVecNgramMin:       settings.Vectorizer.NgramMin,
		keyVecNgramMax:       settings.Vectorizer.NgramMax,
		keyVecMinDF:          settings.Vectorizer.MinDF,
		keyVecMaxDF:          settings.Vectorizer.MaxDF,
		keyRecTopN:           settings.Recommend.TopN,
		keyRecMediumN:        settings.Recommend.MediumN,
		keyRecDiverseN:       settings.Recommend.DiverseN,
		keyRecMediumStart:    settings.Recommend.MediumStartDivisor,
		keyRecMediumEnd:      settings.Recommend.MediumEndDivisor,
		keyRecShortlist:      settings.Recommend.DiverseShortlistFactor,
		keyRecSnippetLength:  settings.Recommend.SnippetLength,
		keyRecPreviewLength:  settings.Recommend.PreviewLength,
		keyRecSeed:           settings.Recommend.Seed,
		keyCacheEnabled:      settings.Cache.Enabled,
		keyCacheDir:          settings.Cache.Dir,
	}

	for _, k := range settingKeys {
		if err := s.configStore.Set(k.key, values[k.key]); err != nil {
			return fmt.Errorf("save %s: %w", k.key, err)
		}
	}
	return nil
}

// SetValue parses raw for key and persists it, rejecting values that would
// make the settings invalid.
func (s *SettingsService) SetValue(key, raw string) error {
	kind, ok := lookupKind(key)
	if !ok {
		return fmt.Errorf("%w: setting %q", domain.ErrNotFound, key)
	}

	value, err := parseSetting(kind, raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", domain.ErrInvalidInput, key, raw, err)
	}

	previous, existed := s.configStore.Get(key)
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	if _, err := s.Get(); err != nil {
		// Roll back so a bad value never sticks in the config file.
		if existed {
			_ = s.configStore.Set(key, previous)
		} else {
			_ = s.configStore.Set(key, defaultValue(key))
		}
		return err
	}
	return nil
}

// Keys returns every recognised setting key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func lookupKind(key string) (settingKind, bool) {
	for _, k := range settingKeys {
		if k.key == key {
			return k.kind, true
		}
	}
	return kindString, false
}

func parseSetting(kind settingKind, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch kind {
	case kindInt:
		return strconv.Atoi(raw)
	case kindFloat:
		return strconv.ParseFloat(raw, 64)
	case kindBool:
		return strconv.ParseBool(raw)
	case kindList:
		parts := strings.Split(raw, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		return list, nil
	default:
		return raw, nil
	}
}

// defaultValue returns the default for key in the form Save writes it.
func defaultValue(key string) any {
	d := domain.DefaultAppSettings()
	switch key {
	case keyCorpusSource:
		return d.Corpus.Source.String()
	case keyVecNgramMin:
		return d.Vectorizer.NgramMin
	case keyVecNgramMax:
		return d.Vectorizer.NgramMax
	case keyVecMinDF:
		return d.Vectorizer.MinDF
	case keyVecMaxDF:
		return d.Vectorizer.MaxDF
	case keyRecTopN:
		return d.Recommend.TopN
	case keyRecMediumN:
		return d.Recommend.MediumN
	case keyRecDiverseN:
		return d.Recommend.DiverseN
	case keyRecMediumStart:
		return d.Recommend.MediumStartDivisor
	case keyRecMediumEnd:
		return d.Recommend.MediumEndDivisor
	case keyRecShortlist:
		return d.Recommend.DiverseShortlistFactor
	case keyRecSnippetLength:
		return d.Recommend.SnippetLength
	case keyRecPreviewLength:
		return d.Recommend.PreviewLength
	default:
		return ""
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}
