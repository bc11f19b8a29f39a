// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

// Theme is the colour palette. Each recommendation band has its own colour
// so the three groups stay apart at a glance.
type Theme struct {
	Accent lipgloss.Color
	Text   lipgloss.Color
	Subtle lipgloss.Color
	Error  lipgloss.Color
	Frame  lipgloss.Color
	Bar    lipgloss.Color

	Top     lipgloss.Color
	Medium  lipgloss.Color
	Diverse lipgloss.Color
	Score   lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  lipgloss.Color("#7C3AED"), // Purple
		Text:    lipgloss.Color("#CDD6F4"),
		Subtle:  lipgloss.Color("#6C7086"),
		Error:   lipgloss.Color("#F38BA8"),
		Frame:   lipgloss.Color("#45475A"),
		Bar:     lipgloss.Color("#181825"),
		Top:     lipgloss.Color("#A6E3A1"), // Green
		Medium:  lipgloss.Color("#06B6D4"), // Cyan
		Diverse: lipgloss.Color("#FAB387"), // Peach
		Score:   lipgloss.Color("#F9E2AF"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style

	// Band headings, one per recommendation band.
	TopBand     lipgloss.Style
	MediumBand  lipgloss.Style
	DiverseBand lipgloss.Style

	// Score renders similarity values.
	Score lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	heading := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(c)
	}

	return &Styles{
		theme: theme,

		Title:    heading(theme.Accent),
		Subtitle: heading(theme.Text),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text),
		Muted:    lipgloss.NewStyle().Foreground(theme.Subtle),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text).
			Background(theme.Accent),
		Error: lipgloss.NewStyle().Foreground(theme.Error),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			Background(theme.Bar).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(theme.Subtle),

		TopBand:     heading(theme.Top),
		MediumBand:  heading(theme.Medium),
		DiverseBand: heading(theme.Diverse),
		Score:       lipgloss.NewStyle().Foreground(theme.Score),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Band returns the heading style of a recommendation band.
func (s *Styles) Band(b domain.Band) lipgloss.Style {
	switch b {
	case domain.BandTop:
		return s.TopBand
	case domain.BandMedium:
		return s.MediumBand
	case domain.BandDiverse:
		return s.DiverseBand
	default:
		return s.Subtitle
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
