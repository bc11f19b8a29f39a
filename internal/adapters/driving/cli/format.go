package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

const (
	itemRuleWidth    = 90
	sectionRuleWidth = 80
)

// printSelected writes the header and preview of the chosen document.
func printSelected(w io.Writer, index int, doc *domain.Document, previewLen int) {
	fmt.Fprintf(w, "\n=== Selected Document [%d] ===\n", index)
	fmt.Fprintf(w, "DocId: %s | DocType: %s\n", doc.ID, doc.Type)
	fmt.Fprintf(w, "File Size: %s | File Path: %s\n", orDash(doc.FileSize), orDash(doc.FilePath))
	fmt.Fprintln(w, "\n=== Document Preview ===")
	fmt.Fprintln(w, domain.Snippet(doc.Text, previewLen))
	fmt.Fprintln(w, strings.Repeat("=", sectionRuleWidth))
}

// printRecommendations writes one section per band. A document drawn into two
// bands is listed in both sections.
func printRecommendations(w io.Writer, set *domain.RecommendationSet) {
	for _, band := range domain.Bands() {
		items := set.ItemsFor(band)

		fmt.Fprintf(w, "\n===-------- %s --------===\n", band.Title())
		fmt.Fprintf(w, "Indices: %v\n", set.Indices(band))
		if len(items) == 0 {
			fmt.Fprintln(w, "(none)")
			continue
		}
		for _, item := range items {
			fmt.Fprintf(w, "DocId: %s | DocType: %s\n", item.ID, item.Type)
			fmt.Fprintf(w, "Snippet: %s\n", item.Snippet)
			fmt.Fprintln(w, strings.Repeat("-", itemRuleWidth))
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
