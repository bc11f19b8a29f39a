package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/views/documents"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/views/recommend"
	"github.com/custodia-labs/docrec/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	statusBar     *status.Bar
	documentsView *documents.View
	recommendView *recommend.View

	// currentView tracks which view is active; previousView is restored when help closes.
	currentView  messages.ViewType
	previousView messages.ViewType

	corpus *domain.Corpus
	err    error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		statusBar:     status.NewBar(s, km),
		documentsView: documents.NewView(s),
		recommendView: recommend.NewView(s, ports.Recommend),
		currentView:   messages.ViewDocuments,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx == nil {
		return a
	}
	a.ctx = ctx
	a.recommendView.SetContext(ctx)
	return a
}

// WithPreviewLength sets the number of characters shown for the selected document.
func (a *App) WithPreviewLength(n int) *App {
	a.recommendView.SetPreviewLength(n)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("docrec"),
		a.loadCorpus(),
	)
}

// loadCorpus returns a command that loads the corpus unless it already is.
func (a *App) loadCorpus() tea.Cmd {
	ctx := a.ctx
	corpusService := a.ports.Corpus
	return func() tea.Msg {
		corpus, err := corpusService.Current()
		if errors.Is(err, domain.ErrCorpusNotLoaded) {
			corpus, err = corpusService.Load(ctx)
		}
		return messages.CorpusLoaded{Corpus: corpus, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.CorpusLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetError(msg.Err)
		} else {
			a.corpus = msg.Corpus
			a.statusBar.SetDocumentCount(msg.Corpus.Size())
			a.statusBar.Clear()
		}
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.DocumentChosen:
		a.currentView = messages.ViewRecommend
		return a, a.recommendView.Request(msg.Index)

	case messages.RecommendationsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetError(msg.Err)
		} else {
			a.err = nil
			a.statusBar.Clear()
			a.statusBar.SetState(status.StateRecommended)
			a.statusBar.SetRequestID(msg.Set.RequestID)
		}
		a.recommendView, cmd = a.recommendView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewRecommend && a.recommendView.Document() == nil {
			return a, a.recommendView.FocusInput()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetError(msg.Err)

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewRecommend:
		a.recommendView, cmd = a.recommendView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	typing := a.currentView == messages.ViewRecommend && a.recommendView.InputFocused()
	if !typing {
		switch {
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(msg.String(), a.keymap.Help):
			a.toggleHelp()
			return a, nil
		}
	}

	switch a.currentView {
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewRecommend:
		a.recommendView, cmd = a.recommendView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.toggleHelp()
		}
	}
	return a, cmd
}

func (a *App) toggleHelp() {
	if a.currentView == messages.ViewHelp {
		a.currentView = a.previousView
		return
	}
	a.previousView = a.currentView
	a.currentView = messages.ViewHelp
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewRecommend:
		body = a.recommendView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	case messages.ViewDocuments:
		body = a.documentsView.View()
	default:
		body = a.documentsView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Documents:
  j/k, ↑/↓    Navigate documents
  g/G         First / last document
  enter       Recommend for the selected document
  /           Type a document index

Recommendations:
  (digits)    Document index
  enter       Recommend for the typed index or highlighted item
  r           Re-roll the medium and diverse samples
  tab         Switch between the index and the results
  esc         Back to documents

Anywhere:
  ?           Toggle help
  q, ctrl+c   Quit

[esc] close help`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Corpus returns the loaded corpus, or nil before loading finished.
func (a *App) Corpus() *domain.Corpus {
	return a.corpus
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// leave room for the status bar
	a.documentsView.SetDimensions(width, height-2)
	a.recommendView.SetDimensions(width, height-2)
	a.statusBar.SetWidth(width)
}
