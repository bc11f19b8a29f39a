// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docrec/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docrec/internal/core/domain"
)

// row is one line of the list: a recommendation under its band heading.
type row struct {
	band domain.Band
	item domain.Recommendation
}

// BandList displays a recommendation set grouped by band. A document drawn
// into two bands appears under both headings.
type BandList struct {
	set      *domain.RecommendationSet
	rows     []row
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewBandList creates a new band list component.
func NewBandList(s *styles.Styles) *BandList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &BandList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the list.
func (l *BandList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *BandList) Update(msg tea.Msg) (*BandList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the bands.
func (l *BandList) View() string {
	if l.set == nil {
		return l.styles.Muted.Render("No recommendations yet")
	}

	var b strings.Builder
	pos := 0
	for _, band := range domain.Bands() {
		items := l.set.ItemsFor(band)

		b.WriteString(l.styles.Band(band).Render(fmt.Sprintf("%s %v", band.Title(), l.set.Indices(band))))
		b.WriteString("\n")
		if len(items) == 0 {
			b.WriteString(l.styles.Muted.Render("    (none)"))
			b.WriteString("\n\n")
			continue
		}
		for _, item := range items {
			b.WriteString(l.renderItem(pos, item))
			b.WriteString("\n")
			pos++
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (l *BandList) renderItem(pos int, item domain.Recommendation) string {
	indicator := "  "
	if pos == l.selected {
		indicator = "> "
	}

	head := fmt.Sprintf("%s[%d] %s (%s)", indicator, item.Index, item.ID, item.Type)
	score := fmt.Sprintf("%.3f", item.Score)

	var headLine string
	if pos == l.selected {
		headLine = l.styles.Selected.Render(head + "  " + score)
	} else {
		headLine = l.styles.Normal.Render(head+"  ") + l.styles.Score.Render(score)
	}

	return headLine + "\n" + l.styles.Muted.Render("    "+l.fit(item.Snippet))
}

// fit truncates s to the list width, counting runes.
func (l *BandList) fit(s string) string {
	limit := l.width - 6
	if limit < 20 {
		limit = 20
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// SetRecommendations replaces the displayed set.
func (l *BandList) SetRecommendations(set *domain.RecommendationSet) {
	l.set = set
	l.rows = nil
	l.selected = 0
	if set == nil {
		return
	}
	for _, band := range domain.Bands() {
		for _, item := range set.ItemsFor(band) {
			l.rows = append(l.rows, row{band: band, item: item})
		}
	}
}

// Recommendations returns the displayed set.
func (l *BandList) Recommendations() *domain.RecommendationSet {
	return l.set
}

// Selected returns the position of the highlighted row.
func (l *BandList) Selected() int {
	return l.selected
}

// SelectedItem returns the highlighted recommendation and its band.
func (l *BandList) SelectedItem() (domain.Recommendation, domain.Band, bool) {
	if l.selected < 0 || l.selected >= len(l.rows) {
		return domain.Recommendation{}, "", false
	}
	r := l.rows[l.selected]
	return r.item, r.band, true
}

// MoveUp moves selection up.
func (l *BandList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *BandList) MoveDown() {
	if l.selected < len(l.rows)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *BandList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of rows across all bands.
func (l *BandList) Count() int {
	return len(l.rows)
}

// IsEmpty returns whether there is nothing to select.
func (l *BandList) IsEmpty() bool {
	return len(l.rows) == 0
}
