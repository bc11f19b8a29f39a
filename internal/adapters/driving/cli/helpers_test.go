package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/docrec/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docrec/internal/core/domain"
	coreservices "github.com/custodia-labs/docrec/internal/core/services"
)

// testDocuments has types A, A, B, B, A.
var testDocuments = []domain.Document{
	{ID: "d0", Type: "A", Text: "alpha report on yearly sales " + strings.Repeat("x", 400), FileSize: "4 KB", FilePath: "/docs/d0.txt"},
	{ID: "d1", Type: "A", Text: "alpha summary of yearly sales"},
	{ID: "d2", Type: "B", Text: "beta invoice for services"},
	{ID: "d3", Type: "B", Text: "beta receipt"},
	{ID: "d4", Type: "A", Text: "alpha memo on sales"},
}

var testRows = [][]float64{
	{1, 0.9, 0.2, 0.1, 0.8},
	{0.9, 1, 0.3, 0.2, 0.7},
	{0.2, 0.3, 1, 0.6, 0.4},
	{0.1, 0.2, 0.6, 1, 0.5},
	{0.8, 0.7, 0.4, 0.5, 1},
}

// fixedBuilder returns testRows regardless of the texts.
type fixedBuilder struct{}

func (fixedBuilder) Build(_ context.Context, _ []string) (*domain.SimilarityMatrix, error) {
	return domain.SimilarityMatrixFromRows(testRows)
}

func (fixedBuilder) Signature() string {
	return "fixed"
}

// firstSampler always picks the first candidate.
type firstSampler struct{}

func (firstSampler) IntN(int) int {
	return 0
}

// countingLoader counts how often the document table is read.
type countingLoader struct {
	*memory.DocumentStore
	loads int
}

func (l *countingLoader) Load(ctx context.Context) ([]domain.Document, error) {
	l.loads++
	return l.DocumentStore.Load(ctx)
}

// testEnv exposes the stores behind the services installed by setupTestServices.
type testEnv struct {
	loader   *countingLoader
	docStore *memory.DocumentStore
	settings *coreservices.SettingsService
}

// setupTestServices installs in-memory services over testDocuments and
// restores the package state when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		loader:   &countingLoader{DocumentStore: memory.NewDocumentStore(testDocuments...)},
		docStore: memory.NewDocumentStore(),
		settings: coreservices.NewSettingsService(memory.NewConfigStore()),
	}

	texts := memory.NewTextStore()
	corpus := coreservices.NewCorpusService(env.loader, fixedBuilder{}, texts)
	corpus.SetDocumentStore(env.docStore)
	corpus.SetMatrixStore(memory.NewMatrixStore())

	SetServices(&Services{
		Settings:      env.settings,
		Corpus:        corpus,
		Recommend:     coreservices.NewRecommendationService(corpus, firstSampler{}, domain.DefaultRecommendOptions()),
		PreviewLength: 350,
		IndexPath:     ":memory:",
	})

	t.Cleanup(resetCLI)
	return env
}

var defaultIsTerminal = isTerminal

func resetCLI() {
	services = nil
	bootstrap = nil
	isTerminal = defaultIsTerminal
	resetFlags(rootCmd)
}

// resetFlags restores every flag to its default so tests do not leak flag state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args and stdin, returning combined output.
func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	rootCmd.SetIn(stdin)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
