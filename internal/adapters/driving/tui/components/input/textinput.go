// Package input provides text input components for the TUI.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docrec/internal/core/domain"
)

// IndexInput wraps a bubbles textinput that accepts a document index.
type IndexInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewIndexInput creates a new index input component.
func NewIndexInput(s *styles.Styles) *IndexInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Document index..."
	ti.Focus()
	ti.CharLimit = 10
	ti.Width = 20

	return &IndexInput{
		textinput: ti,
		styles:    s,
		width:     20,
	}
}

// Init initialises the input.
func (i *IndexInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Typed characters other than digits are dropped.
func (i *IndexInput) Update(msg tea.Msg) (*IndexInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes && digitsOnly(string(k.Runes)) != nil {
		return i, nil
	}
	var cmd tea.Cmd
	i.textinput, cmd = i.textinput.Update(msg)
	return i, cmd
}

// View renders the input.
func (i *IndexInput) View() string {
	label := i.styles.Title.Render("Document: ")
	field := i.styles.InputField.Render(i.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Index parses the typed value.
func (i *IndexInput) Index() (int, error) {
	raw := strings.TrimSpace(i.textinput.Value())
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a document index", domain.ErrInvalidInput, raw)
	}
	return index, nil
}

// Value returns the current input value.
func (i *IndexInput) Value() string {
	return i.textinput.Value()
}

// SetValue sets the input value.
func (i *IndexInput) SetValue(value string) {
	i.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (i *IndexInput) Focus() tea.Cmd {
	return i.textinput.Focus()
}

// Blur removes focus from the input.
func (i *IndexInput) Blur() {
	i.textinput.Blur()
}

// Focused returns whether the input is focused.
func (i *IndexInput) Focused() bool {
	return i.textinput.Focused()
}

// SetWidth sets the width of the input.
func (i *IndexInput) SetWidth(width int) {
	i.width = width
	inputWidth := width - 14
	if inputWidth < 10 {
		inputWidth = 10
	}
	i.textinput.Width = inputWidth
}

// Width returns the current width.
func (i *IndexInput) Width() int {
	return i.width
}

// Reset clears the input.
func (i *IndexInput) Reset() {
	i.textinput.Reset()
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: digits only", domain.ErrInvalidInput)
		}
	}
	return nil
}
