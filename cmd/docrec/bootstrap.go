package main

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docrec/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docrec/internal/adapters/driven/csvloader"
	"github.com/custodia-labs/docrec/internal/adapters/driven/random"
	"github.com/custodia-labs/docrec/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docrec/internal/adapters/driven/tfidf"
	"github.com/custodia-labs/docrec/internal/adapters/driven/watch"
	"github.com/custodia-labs/docrec/internal/adapters/driving/cli"
	"github.com/custodia-labs/docrec/internal/analysers"
	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
	"github.com/custodia-labs/docrec/internal/core/services"
	"github.com/custodia-labs/docrec/internal/logger"
)

// bootstrap wires the adapters selected by settings and flag overrides.
// Invalid settings still yield a settings service so they can be repaired
// with `docrec settings set`.
func bootstrap(_ context.Context, o cli.Overrides) (*cli.Services, error) {
	configStore, err := openConfig(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Error("%v", err)
		return &cli.Services{Settings: settingsService}, nil
	}
	if o.CorpusPath != "" {
		settings.Corpus.Path = o.CorpusPath
	}
	if o.SeedSet {
		settings.Recommend.Seed = o.Seed
	}

	pipeline, err := analysers.DefaultRegistry().BuildPipeline(
		settings.Vectorizer.Analysers, analysers.ConfigFromSettings(settings.Vectorizer))
	if err != nil {
		return nil, fmt.Errorf("building analysers: %w", err)
	}
	logger.Debug("Analysers: %v", pipeline.Names())

	store, err := sqlite.NewStore(settings.Cache.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	loader, watchPath := documentLoader(settings, store)

	var texts driven.TextStore
	if settings.Cache.Enabled {
		texts = store.TextStore()
	}

	corpus := services.NewCorpusService(loader, tfidf.NewVectorizer(pipeline, settings.Vectorizer), texts)
	corpus.SetDocumentStore(store.DocumentStore())
	if settings.Cache.Enabled || settings.Corpus.Source == domain.CorpusSourceSQLite {
		corpus.SetMatrixStore(store.MatrixStore())
	}
	if settings.Corpus.SnippetPath != "" {
		corpus.SetSnippetLoader(csvloader.NewSnippetLoader(
			settings.Corpus.SnippetPath, csvloader.ColumnsFromSettings(settings.Corpus)))
	}

	sampler := random.NewSource(settings.Recommend.Seed)
	logger.Debug("Sampler seed: %d", sampler.Seed())

	return &cli.Services{
		Settings:      settingsService,
		Corpus:        corpus,
		Recommend:     services.NewRecommendationService(corpus, sampler, settings.Recommend.Options()),
		Watcher:       watch.New(watch.DefaultDebounce),
		WatchPath:     watchPath,
		PreviewLength: settings.Recommend.PreviewLength,
		IndexPath:     store.Path(),
		Close:         store.Close,
	}, nil
}

func openConfig(path string) (*file.ConfigStore, error) {
	if path != "" {
		return file.NewConfigStoreAt(path)
	}
	return file.NewConfigStore("")
}

// documentLoader returns the loader for the configured source and the file
// to watch for changes, if any.
func documentLoader(settings *domain.AppSettings, store *sqlite.Store) (driven.DocumentLoader, string) {
	if settings.Corpus.Source == domain.CorpusSourceSQLite {
		return store.DocumentStore(), ""
	}
	return csvloader.New(settings.Corpus.Path, csvloader.ColumnsFromSettings(settings.Corpus)), settings.Corpus.Path
}
