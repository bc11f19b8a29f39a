// Package recommend provides the recommendation view component for the TUI.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driving"
)

// DefaultPreviewLength is the number of characters shown for the selected document.
const DefaultPreviewLength = 350

var errNoService = errors.New("recommendation service not available")

// View shows the selected document and its three recommendation bands.
type View struct {
	styles    *styles.Styles
	recommend driving.RecommendationService
	ctx       context.Context

	input *input.IndexInput
	bands *list.BandList

	document   *domain.Document
	index      int
	previewLen int
	loading    bool
	err        error
	width      int
	height     int
}

// NewView creates a new recommendation view.
func NewView(s *styles.Styles, recommend driving.RecommendationService) *View {
	return &View{
		styles:     s,
		recommend:  recommend,
		ctx:        context.Background(),
		input:      input.NewIndexInput(s),
		bands:      list.NewBandList(s),
		previewLen: DefaultPreviewLength,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// SetPreviewLength sets the number of characters shown for the selected document.
func (v *View) SetPreviewLength(n int) {
	if n > 0 {
		v.previewLen = n
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Request returns a command that recommends for the document at index.
// Requesting the current document again re-rolls the sampled bands.
func (v *View) Request(index int) tea.Cmd {
	v.loading = true
	ctx := v.ctx
	return func() tea.Msg {
		if v.recommend == nil {
			return messages.RecommendationsLoaded{Index: index, Err: errNoService}
		}

		set, err := v.recommend.Recommend(ctx, index, v.recommend.DefaultOptions())
		if err != nil {
			return messages.RecommendationsLoaded{Index: index, Err: err}
		}
		return messages.RecommendationsLoaded{Index: index, Document: set.SelectedDocument, Set: set}
	}
}

// Update handles messages for the recommendation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.input.Focused() {
			return v.handleInputKey(msg)
		}
		return v.handleListKey(msg)

	case messages.RecommendationsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.index = msg.Index
		v.document = msg.Document
		v.bands.SetRecommendations(msg.Set)
		v.input.SetValue(fmt.Sprint(msg.Index))
		v.input.Blur()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	if v.input.Focused() {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		index, err := v.input.Index()
		if err != nil {
			v.err = err
			return v, nil
		}
		return v, v.Request(index)
	case "tab":
		if v.document != nil {
			v.input.Blur()
		}
		return v, nil
	case "esc":
		return v, back
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if item, _, ok := v.bands.SelectedItem(); ok {
			return v, v.Request(item.Index)
		}
		return v, nil
	case "r":
		if v.document == nil {
			return v, nil
		}
		return v, v.Request(v.index)
	case "tab", "/":
		v.input.Reset()
		return v, v.input.Focus()
	case "esc":
		return v, back
	}

	var cmd tea.Cmd
	v.bands, cmd = v.bands.Update(msg)
	return v, cmd
}

func back() tea.Msg {
	return messages.ViewChanged{View: messages.ViewDocuments}
}

// View renders the recommendation view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Recommendations"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Recommending..."))
		b.WriteString("\n\n")
	}

	if v.document != nil {
		b.WriteString(v.renderSelected())
		b.WriteString("\n\n")
		b.WriteString(v.bands.View())
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render(v.helpText()))
	return b.String()
}

func (v *View) renderSelected() string {
	doc := v.document
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Selected [%d] %s | %s", v.index, doc.ID, doc.Type)))
	b.WriteString("\n")
	if doc.FileSize != "" || doc.FilePath != "" {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("File Size: %s | File Path: %s", doc.FileSize, doc.FilePath)))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Normal.Render(domain.Snippet(doc.Text, v.previewLen)))
	return b.String()
}

func (v *View) helpText() string {
	if v.input.Focused() {
		return "[enter] recommend  [tab] results  [esc] documents"
	}
	return "[↑/↓] navigate  [enter] recommend for item  [r] re-roll  [tab] index  [esc] documents"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.bands.SetDimensions(width, height)
}

// InputFocused reports whether keystrokes go to the index input.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// FocusInput clears and focuses the index input.
func (v *View) FocusInput() tea.Cmd {
	v.input.Reset()
	return v.input.Focus()
}

// Document returns the selected document, or nil before the first recommendation.
func (v *View) Document() *domain.Document {
	return v.document
}

// Index returns the selected document's index.
func (v *View) Index() int {
	return v.index
}

// Recommendations returns the displayed set.
func (v *View) Recommendations() *domain.RecommendationSet {
	return v.bands.Recommendations()
}

// Loading reports whether a request is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
