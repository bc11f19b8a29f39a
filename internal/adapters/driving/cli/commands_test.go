package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

func TestIndexCmd_PersistsCorpus(t *testing.T) {
	env := setupTestServices(t)

	out, err := run(t, nil, "index")

	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 5 documents.")
	assert.Contains(t, out, "Stored in :memory:")

	stored, err := env.docStore.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDocuments, stored)
}

func TestIndexCmd_NoServices(t *testing.T) {
	t.Cleanup(resetCLI)

	_, err := run(t, nil, "index")

	assert.ErrorIs(t, err, errNoCorpus)
}

func TestSettingsCmd_ShowsDefaults(t *testing.T) {
	setupTestServices(t)

	out, err := run(t, nil, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Corpus]")
	assert.Contains(t, out, "[Vectorizer]")
	assert.Contains(t, out, "Bands: top 4, medium 3, diverse 3")
	assert.Contains(t, out, "Snippet Length: 120")
	assert.Contains(t, out, "Preview Length: 350")
	assert.Contains(t, out, "Seed: (random)")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsSetCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := run(t, nil, "settings", "set", "recommend.top_n", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Set recommend.top_n = 6")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 6, settings.Recommend.TopN)

	out, err = run(t, nil, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Bands: top 6, medium 3, diverse 3")
}

func TestSettingsSetCmd_UnknownKey(t *testing.T) {
	setupTestServices(t)

	_, err := run(t, nil, "settings", "set", "recommend.colour", "blue")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsSetCmd_InvalidValue(t *testing.T) {
	env := setupTestServices(t)

	_, err := run(t, nil, "settings", "set", "recommend.top_n", "many")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 4, settings.Recommend.TopN)
}

func TestSettingsKeysCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := run(t, nil, "settings", "keys")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, env.settings.Keys(), lines)
	assert.Contains(t, lines, "recommend.top_n")
}

func TestSettingsPathCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := run(t, nil, "settings", "path")

	require.NoError(t, err)
	assert.Equal(t, env.settings.Path()+"\n", out)
}

func TestSettingsCmd_NoService(t *testing.T) {
	t.Cleanup(resetCLI)

	_, err := run(t, nil, "settings")

	assert.ErrorIs(t, err, errNoSettings)
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	setupTestServices(t)
	isTerminal = func() bool { return false }

	_, err := run(t, nil, "tui")

	assert.ErrorIs(t, err, errNotTerminal)
}

func TestMCPServeCmd_NoServices(t *testing.T) {
	t.Cleanup(resetCLI)

	_, err := run(t, nil, "mcp", "serve")

	assert.ErrorIs(t, err, errNoCorpus)
}

func TestMCPServeCmd_Flags(t *testing.T) {
	flags := mcpServeCmd.Flags()

	assert.NotNil(t, flags.Lookup("port"))
	assert.NotNil(t, flags.Lookup("rate"))
	assert.NotNil(t, flags.Lookup("burst"))
	assert.Equal(t, "p", flags.Lookup("port").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"interactive", "recommend", "show", "list", "index", "settings", "tui", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}
