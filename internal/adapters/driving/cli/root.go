// Package cli provides the docrec command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
	"github.com/custodia-labs/docrec/internal/core/ports/driving"
	"github.com/custodia-labs/docrec/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Overrides carries root flags that change how services are built.
type Overrides struct {
	ConfigPath string
	CorpusPath string
	Seed       int64
	SeedSet    bool
}

// Services are the ports the commands drive.
type Services struct {
	Settings  driving.SettingsService
	Corpus    driving.CorpusService
	Recommend driving.RecommendationService

	// Watcher and WatchPath enable --watch in interactive mode.
	Watcher   driven.FileWatcher
	WatchPath string

	// PreviewLength is the number of characters shown for the selected document.
	PreviewLength int

	// IndexPath is where `docrec index` persists the corpus.
	IndexPath string

	// Close releases resources such as database handles.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(ctx context.Context, o Overrides) (*Services, error)

var (
	services  *Services
	bootstrap Bootstrap

	verboseFlag bool
	configFlag  string
	corpusFlag  string
	seedFlag    int64
)

var rootCmd = &cobra.Command{
	Use:   "docrec",
	Short: "Recommend related documents",
	Long: `docrec recommends documents related to a chosen one.

For a selected document it lists three groups:
  Highly Similar     - the most similar documents
  Medium Similarity  - a random sample from the middle of the ranking
  Diverse            - similar documents of a different type

Run without a subcommand to start the interactive prompt.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "print debug logs to stderr")
	flags.StringVar(&configFlag, "config", "", "config file (default ~/.docrec/config.toml)")
	flags.StringVar(&corpusFlag, "corpus", "", "document table to load, overrides corpus.path")
	flags.Int64Var(&seedFlag, "seed", 0, "random seed for sampled bands, overrides recommend.seed")
	addInteractiveFlags(rootCmd)
}

// SetBootstrap registers the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs ready-made services, bypassing the bootstrap.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	if services != nil || bootstrap == nil {
		return nil
	}

	o := Overrides{
		ConfigPath: configFlag,
		CorpusPath: corpusFlag,
		Seed:       seedFlag,
		SeedSet:    cmd.Flags().Changed("seed"),
	}
	s, err := bootstrap(commandContext(cmd), o)
	if err != nil {
		return err
	}
	services = s
	return nil
}

func closeServices() {
	if services == nil || services.Close == nil {
		return
	}
	if err := services.Close(); err != nil {
		logger.Warn("closing services: %v", err)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Errors returned when a command runs without the services it needs.
var (
	errNoSettings  = errors.New("settings service not configured")
	errNoCorpus    = errors.New("corpus service not configured")
	errNoRecommend = errors.New("recommendation service not configured")
)

// loadedCorpus returns the current corpus, loading it on first use.
func loadedCorpus(ctx context.Context) (*domain.Corpus, error) {
	if services == nil || services.Corpus == nil {
		return nil, errNoCorpus
	}

	corpus, err := services.Corpus.Current()
	if errors.Is(err, domain.ErrCorpusNotLoaded) {
		corpus, err = services.Corpus.Load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	return corpus, nil
}

func recommendationService() (driving.RecommendationService, error) {
	if services == nil || services.Recommend == nil {
		return nil, errNoRecommend
	}
	return services.Recommend, nil
}

func previewLength() int {
	if services == nil || services.PreviewLength <= 0 {
		return domain.DefaultAppSettings().Recommend.PreviewLength
	}
	return services.PreviewLength
}
