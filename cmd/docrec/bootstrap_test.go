package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docrec/internal/adapters/driving/cli"
)

const testCSV = `DocId,DocType,DocText,FileSize,FilePath
d0,A,quarterly sales report for the north region,4 KB,/docs/d0.txt
d1,A,yearly sales report for the north region,5 KB,/docs/d1.txt
d2,B,invoice for office supplies and sales tax,1 KB,/docs/d2.txt
d3,B,invoice for office chairs,1 KB,/docs/d3.txt
d4,A,sales summary for the board,2 KB,/docs/d4.txt
`

func writeFixture(t *testing.T, config string) (dir, csvPath, configPath string) {
	t.Helper()
	dir = t.TempDir()
	csvPath = filepath.Join(dir, "docs.csv")
	configPath = filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0600))
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0600))
	return dir, csvPath, configPath
}

func TestBootstrap_CSVCorpus(t *testing.T) {
	dir := t.TempDir()
	_, csvPath, configPath := writeFixture(t, fmt.Sprintf("[cache]\ndir = %q\n", filepath.Join(dir, "data")))
	ctx := context.Background()

	s, err := bootstrap(ctx, cli.Overrides{ConfigPath: configPath, CorpusPath: csvPath, Seed: 3, SeedSet: true})
	require.NoError(t, err)
	require.NotNil(t, s.Corpus)
	defer func() { assert.NoError(t, s.Close()) }()

	assert.Equal(t, csvPath, s.WatchPath)
	assert.Equal(t, 350, s.PreviewLength)
	assert.Equal(t, filepath.Join(dir, "data", "index.db"), s.IndexPath)
	assert.NotNil(t, s.Watcher)

	corpus, err := s.Corpus.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, corpus.Size())

	set, err := s.Recommend.Recommend(ctx, 0, s.Recommend.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "d0", set.SelectedID)
	assert.Len(t, set.Top, 4)
	assert.NotContains(t, set.Top, 0)
}

func TestBootstrap_IndexThenSQLiteSource(t *testing.T) {
	dir := t.TempDir()
	config := fmt.Sprintf("[cache]\ndir = %q\nenabled = true\n", filepath.Join(dir, "data"))
	_, csvPath, configPath := writeFixture(t, config)
	ctx := context.Background()

	s, err := bootstrap(ctx, cli.Overrides{ConfigPath: configPath, CorpusPath: csvPath})
	require.NoError(t, err)
	_, err = s.Corpus.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Corpus.Persist(ctx))
	require.NoError(t, s.Close())

	require.NoError(t, s.Settings.SetValue("corpus.source", "sqlite"))

	s, err = bootstrap(ctx, cli.Overrides{ConfigPath: configPath})
	require.NoError(t, err)
	defer func() { assert.NoError(t, s.Close()) }()
	assert.Empty(t, s.WatchPath)

	corpus, err := s.Corpus.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, corpus.Size())
	assert.Equal(t, "d3", corpus.Documents[3].ID)
}

func TestBootstrap_InvalidSettingsKeepSettingsService(t *testing.T) {
	_, _, configPath := writeFixture(t, "[recommend]\ntop_n = -1\n")

	s, err := bootstrap(context.Background(), cli.Overrides{ConfigPath: configPath})

	require.NoError(t, err)
	assert.NotNil(t, s.Settings)
	assert.Nil(t, s.Corpus)
	assert.Nil(t, s.Recommend)
	assert.Equal(t, configPath, s.Settings.Path())
}

func TestBootstrap_UnknownAnalyser(t *testing.T) {
	dir := t.TempDir()
	config := fmt.Sprintf("[cache]\ndir = %q\n\n[vectorizer]\nanalysers = [\"tokenise\", \"stem\"]\n", filepath.Join(dir, "data"))
	_, _, configPath := writeFixture(t, config)

	_, err := bootstrap(context.Background(), cli.Overrides{ConfigPath: configPath})

	assert.ErrorContains(t, err, "building analysers")
}
