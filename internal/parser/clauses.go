package parser

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"lexora/internal/domain"
)

// minClauseTextLen is the threshold below which extracted clause text is
// treated as noise and dropped.
const minClauseTextLen = 20

// rawClause mirrors the JSON shape the model is prompted to emit.
type rawClause struct {
	ClauseType string `json:"clause_type"`
	ClauseText string `json:"clause_text"`
	Context    string `json:"context"`
	Importance string `json:"importance"`
	Section    string `json:"section"`
}

// ParseClauses turns a raw model response into validated clauses. It never
// fails: structural parse errors engage a line-oriented heuristic, and if
// that also yields nothing the result is simply empty.
func ParseClauses(raw string) []domain.Clause {
	var rawClauses []rawClause

	jsonStr, found := outermostSlice(raw, '[', ']')
	if !found {
		jsonStr = raw
	}
	if err := json.Unmarshal([]byte(jsonStr), &rawClauses); err != nil {
		log.Printf("parser.ParseClauses: structured parse failed, using fallback: %v", err)
		return fallbackClauses(raw)
	}

	clauses := make([]domain.Clause, 0, len(rawClauses))
	for _, rc := range rawClauses {
		if c, ok := cleanClause(rc); ok {
			clauses = append(clauses, c)
		}
	}
	return clauses
}

// cleanClause validates one raw record against the closed vocabulary and the
// minimum-length rule. Duplicated clause text is deliberately kept: repeated
// boilerplate is valid input.
func cleanClause(rc rawClause) (domain.Clause, bool) {
	category := domain.ClauseCategory(strings.ToUpper(strings.TrimSpace(rc.ClauseType)))
	if !domain.IsValidClauseCategory(category) {
		return domain.Clause{}, false
	}

	text := strings.TrimSpace(rc.ClauseText)
	if len(text) <= minClauseTextLen {
		return domain.Clause{}, false
	}

	importance := domain.Importance(strings.ToUpper(strings.TrimSpace(rc.Importance)))
	if !domain.IsValidImportance(importance) {
		importance = domain.ImportanceMedium
	}

	section := strings.TrimSpace(rc.Section)
	if section == "" {
		section = "Unknown"
	}

	return domain.Clause{
		Category:   category,
		Text:       text,
		Context:    strings.TrimSpace(rc.Context),
		Importance: importance,
		Section:    section,
	}, true
}

// fallbackClauses scans line by line for a category keyword followed by a
// separator, opens a record, and takes subsequent long non-keyword lines as
// the record body.
func fallbackClauses(raw string) []domain.Clause {
	var clauses []domain.Clause
	var current *domain.Clause

	flush := func() {
		if current != nil && len(current.Text) > minClauseTextLen {
			clauses = append(clauses, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		matched := false
		for _, category := range domain.AllClauseCategories() {
			if strings.Contains(lower, strings.ToLower(string(category))) && strings.Contains(line, ":") {
				flush()
				current = &domain.Clause{
					Category:   category,
					Importance: domain.ImportanceMedium,
					Section:    "Unknown",
				}
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if current != nil && line != "" &&
			!strings.Contains(lower, "type:") &&
			!strings.Contains(lower, "context:") &&
			!strings.Contains(lower, "importance:") &&
			len(line) > minClauseTextLen {
			if current.Text != "" {
				current.Text += " "
			}
			current.Text += line
		}
	}
	flush()

	return clauses
}

// SummarizeClauses aggregates extracted clauses into counts, findings, and
// basic recommendations.
func SummarizeClauses(clauses []domain.Clause) *domain.ClauseSummary {
	summary := &domain.ClauseSummary{
		Distribution: map[domain.ClauseCategory]int{},
		ImportanceCounts: map[domain.Importance]int{
			domain.ImportanceHigh:   0,
			domain.ImportanceMedium: 0,
			domain.ImportanceLow:    0,
		},
		KeyFindings:     []string{},
		Recommendations: []string{},
	}
	if len(clauses) == 0 {
		return summary
	}

	for _, c := range clauses {
		summary.Distribution[c.Category]++
		summary.ImportanceCounts[c.Importance]++
	}
	summary.TotalClauses = len(clauses)
	summary.HighImportance = summary.ImportanceCounts[domain.ImportanceHigh]

	if summary.HighImportance > 0 {
		summary.KeyFindings = append(summary.KeyFindings,
			fmt.Sprintf("Found %d high-importance clauses requiring attention", summary.HighImportance))
	}
	if summary.Distribution[domain.ClauseTermination] > 0 {
		summary.KeyFindings = append(summary.KeyFindings, "Document contains termination provisions")
	}
	if summary.Distribution[domain.ClausePayment] > 0 {
		summary.KeyFindings = append(summary.KeyFindings, "Payment terms are specified in the document")
	}

	if summary.HighImportance > 0 {
		summary.Recommendations = append(summary.Recommendations, "Review all high-importance clauses carefully")
	}
	if summary.Distribution[domain.ClauseLimitationLiability] == 0 {
		summary.Recommendations = append(summary.Recommendations, "Consider adding liability limitation clauses")
	}
	if summary.Distribution[domain.ClauseGoverningLaw] == 0 {
		summary.Recommendations = append(summary.Recommendations, "Ensure governing law and jurisdiction are specified")
	}

	return summary
}
