package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/messages"
)

func newTestApp(t *testing.T) (*App, *mockRecommendService, *mockCorpusService) {
	t.Helper()
	rec := &mockRecommendService{}
	corpus := &mockCorpusService{}
	app, err := NewApp(NewPorts(rec, corpus))
	require.NoError(t, err)
	app.WithContext(context.Background())
	app.SetDimensions(100, 40)
	return app, rec, corpus
}

// send delivers msg to the app and returns the resulting command.
func send(t *testing.T, app *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	model, cmd := app.Update(msg)
	require.Same(t, app, model)
	return cmd
}

func loadCorpus(t *testing.T, app *App) {
	t.Helper()
	send(t, app, app.loadCorpus()())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingRecommendService)
}

func TestApp_InitialState(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
	assert.True(t, app.Ready())
	assert.NotNil(t, app.Init())
}

func TestApp_ViewBeforeSize(t *testing.T) {
	app, err := NewApp(NewPorts(&mockRecommendService{}, &mockCorpusService{}))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_LoadsCorpusOnce(t *testing.T) {
	app, _, corpus := newTestApp(t)

	loadCorpus(t, app)
	loadCorpus(t, app)

	assert.Equal(t, 1, corpus.loads)
	require.NotNil(t, app.Corpus())
	assert.Equal(t, 2, app.Corpus().Size())
	assert.Contains(t, app.View(), "2 documents")
}

func TestApp_CorpusLoadError(t *testing.T) {
	app, _, corpus := newTestApp(t)
	corpus.loadErr = errors.New("missing csv")

	loadCorpus(t, app)

	assert.Error(t, app.Err())
	assert.Contains(t, app.View(), "missing csv")
}

func TestApp_ChooseDocumentShowsRecommendations(t *testing.T) {
	app, rec, _ := newTestApp(t)
	loadCorpus(t, app)

	cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	chosen := cmd()
	assert.Equal(t, messages.DocumentChosen{Index: 0}, chosen)

	cmd = send(t, app, chosen)
	assert.Equal(t, messages.ViewRecommend, app.CurrentView())
	require.NotNil(t, cmd)
	send(t, app, cmd())

	assert.Equal(t, []int{0}, rec.calls)
	assert.NoError(t, app.Err())
	view := app.View()
	assert.Contains(t, view, "Selected [0] d0 | memo")
	assert.Contains(t, view, "request-")
}

func TestApp_RecommendationErrorShownInStatus(t *testing.T) {
	app, _, _ := newTestApp(t)
	loadCorpus(t, app)

	cmd := send(t, app, messages.DocumentChosen{Index: 5})
	send(t, app, cmd())

	assert.Error(t, app.Err())
	assert.Contains(t, app.View(), "Error:")
}

func TestApp_HelpToggle(t *testing.T) {
	app, _, _ := newTestApp(t)

	send(t, app, keyRunes("?"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Re-roll")

	send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
}

func TestApp_QuitKeys(t *testing.T) {
	app, _, _ := newTestApp(t)

	cmd := send(t, app, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	cmd = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	cmd = send(t, app, messages.Quit{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_TypingIndexDoesNotQuit(t *testing.T) {
	app, rec, _ := newTestApp(t)
	loadCorpus(t, app)

	send(t, app, messages.ViewChanged{View: messages.ViewRecommend})

	assert.Nil(t, send(t, app, keyRunes("q")))
	send(t, app, keyRunes("1"))
	cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	send(t, app, cmd())

	assert.Equal(t, messages.ViewRecommend, app.CurrentView())
	assert.Equal(t, []int{1}, rec.calls)
}

func TestApp_EscReturnsToDocuments(t *testing.T) {
	app, _, _ := newTestApp(t)
	send(t, app, messages.ViewChanged{View: messages.ViewRecommend})

	cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	send(t, app, cmd())

	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _, _ := newTestApp(t)

	send(t, app, messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Contains(t, app.View(), "Error: boom")
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(NewPorts(&mockRecommendService{}, &mockCorpusService{}))
	require.NoError(t, err)

	send(t, app, tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.True(t, app.Ready())
}
