package parser

import (
	"strings"

	"lexora/internal/domain"
)

const (
	minExcerptLen = 10
	maxSearchHits = 5
)

// ParseSearchHits parses the search stage's "**Result N:**" block format into
// hits. At most five hits are returned; excerpts of ten characters or fewer
// are dropped as noise.
func ParseSearchHits(raw string) []domain.SearchHit {
	var hits []domain.SearchHit
	var current *domain.SearchHit
	field := ""

	flush := func() {
		if current != nil && len(current.Excerpt) > minExcerptLen {
			hits = append(hits, *current)
		}
		current = nil
		field = ""
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "**Result") {
			flush()
			current = &domain.SearchHit{}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Text:"):
			current.Excerpt = strings.TrimSpace(strings.TrimPrefix(line, "Text:"))
			field = "text"
		case strings.HasPrefix(line, "Relevance:"):
			current.Relevance = strings.TrimSpace(strings.TrimPrefix(line, "Relevance:"))
			field = "relevance"
		case strings.HasPrefix(line, "Context:"):
			current.Context = strings.TrimSpace(strings.TrimPrefix(line, "Context:"))
			field = "context"
		case line != "":
			// Continuation of the last labeled field.
			switch field {
			case "text":
				current.Excerpt += " " + line
			case "relevance":
				current.Relevance += " " + line
			case "context":
				current.Context += " " + line
			}
		}
	}
	flush()

	if len(hits) > maxSearchHits {
		hits = hits[:maxSearchHits]
	}
	return hits
}
