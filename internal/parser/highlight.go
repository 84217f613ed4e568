package parser

import (
	"fmt"
	"sort"
	"strings"

	"lexora/internal/domain"
)

// HighlightClauses wraps each clause's first verbatim occurrence in the
// document text with a colored HTML span. Clauses are applied longest first
// so that a clause contained within a longer one does not split it. Only the
// first occurrence is marked; repeated boilerplate stays plain after that.
func HighlightClauses(text string, clauses []domain.Clause) string {
	if text == "" || len(clauses) == 0 {
		return text
	}

	ordered := make([]domain.Clause, len(clauses))
	copy(ordered, clauses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Text) > len(ordered[j].Text)
	})

	highlighted := text
	for _, c := range ordered {
		if c.Text == "" || !strings.Contains(highlighted, c.Text) {
			continue
		}
		color := domain.DefaultHighlightColor
		if info, ok := domain.ClauseCategories[c.Category]; ok {
			color = info.Color
		}
		span := fmt.Sprintf(
			`<span style="background-color: %s; padding: 2px; border-left: 3px solid #333; margin: 2px;" title="%s: %s">%s</span>`,
			color, c.Category, c.Importance, c.Text)
		highlighted = strings.Replace(highlighted, c.Text, span, 1)
	}
	return highlighted
}
