package parser

import (
	"strings"

	"lexora/internal/domain"
)

const maxRelevantCategories = 3

// keywordRoute maps one question keyword to the clause categories it implies.
type keywordRoute struct {
	keyword    string
	categories []domain.ClauseCategory
}

// keywordRoutes is checked in order; a question can match several routes.
var keywordRoutes = []keywordRoute{
	{"payment", []domain.ClauseCategory{domain.ClausePayment}},
	{"terminate", []domain.ClauseCategory{domain.ClauseTermination}},
	{"end", []domain.ClauseCategory{domain.ClauseTermination}},
	{"liability", []domain.ClauseCategory{domain.ClauseLimitationLiability, domain.ClauseIndemnification}},
	{"confidential", []domain.ClauseCategory{domain.ClauseConfidentiality}},
	{"intellectual property", []domain.ClauseCategory{domain.ClauseIntellectualProperty}},
	{"ip", []domain.ClauseCategory{domain.ClauseIntellectualProperty}},
	{"law", []domain.ClauseCategory{domain.ClauseGoverningLaw}},
	{"jurisdiction", []domain.ClauseCategory{domain.ClauseGoverningLaw}},
	{"force majeure", []domain.ClauseCategory{domain.ClauseForceMajeure}},
	{"assignment", []domain.ClauseCategory{domain.ClauseAssignment}},
	{"warranty", []domain.ClauseCategory{domain.ClauseWarranties}},
	{"deliver", []domain.ClauseCategory{domain.ClauseDelivery}},
}

// RelevantClauses selects up to three clauses useful as context for answering
// a question. Each matching keyword collects its categories' clauses in
// document order; clauses are not deduplicated across keywords. When nothing
// matches, high-importance clauses stand in.
func RelevantClauses(question string, clauses []domain.Clause) []domain.Clause {
	if len(clauses) == 0 {
		return nil
	}
	lower := strings.ToLower(question)

	var relevant []domain.Clause
	matched := false
	for _, route := range keywordRoutes {
		if !strings.Contains(lower, route.keyword) {
			continue
		}
		matched = true
		wanted := make(map[domain.ClauseCategory]bool, len(route.categories))
		for _, category := range route.categories {
			wanted[category] = true
		}
		for _, c := range clauses {
			if wanted[c.Category] {
				relevant = append(relevant, c)
			}
		}
	}

	if !matched {
		for _, c := range clauses {
			if c.Importance == domain.ImportanceHigh {
				relevant = append(relevant, c)
			}
		}
	}

	if len(relevant) > maxRelevantCategories {
		relevant = relevant[:maxRelevantCategories]
	}
	return relevant
}
