package parser

import (
	"strings"

	"lexora/internal/domain"
)

const (
	minQuestionLen = 10
	minQuestions   = 6
	maxQuestions   = 10
	maxKeyPoints   = 10
)

// questionBank backfills the suggested-question list when the model produces
// too few usable questions of its own.
var questionBank = []string{
	"What are the key termination provisions in this document?",
	"What are the payment terms and financial obligations?",
	"Who are the parties to this agreement?",
	"What is the governing law for this document?",
	"What are the confidentiality requirements?",
	"What warranties are provided in this agreement?",
	"What are the liability limitations?",
	"How can this agreement be amended?",
	"What happens in case of force majeure?",
	"What are the delivery and performance obligations?",
}

// ParseQuestions extracts suggested questions from a raw response. Lines must
// end in a question mark and be longer than ten characters; short lists are
// topped up from a fixed bank and the result is capped at ten.
func ParseQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if strings.HasSuffix(line, "?") && len(line) > minQuestionLen {
			questions = append(questions, line)
		}
	}

	for _, q := range questionBank {
		if len(questions) >= minQuestions {
			break
		}
		duplicate := false
		for _, existing := range questions {
			if existing == q {
				duplicate = true
				break
			}
		}
		if !duplicate {
			questions = append(questions, q)
		}
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

// ParseBulletPoints extracts bulleted or numbered lines from a raw response.
func ParseBulletPoints(raw string) []string {
	var points []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !isListEntry(line) {
			continue
		}
		point := strings.TrimSpace(strings.TrimLeft(line, "-*•0123456789. "))
		if point != "" {
			points = append(points, point)
		}
	}
	return points
}

// ParseKeyPoints extracts up to ten key points from a summary-stage response.
func ParseKeyPoints(raw string) []string {
	points := ParseBulletPoints(raw)
	if len(points) > maxKeyPoints {
		points = points[:maxKeyPoints]
	}
	return points
}

// ParseRiskAnalysis scans a risk-stage response for its four labeled sections
// and collects the dashed entries under each.
func ParseRiskAnalysis(raw string) *domain.RiskAnalysis {
	analysis := &domain.RiskAnalysis{
		HighRisks:       []string{},
		MediumRisks:     []string{},
		Recommendations: []string{},
		ComplianceNotes: []string{},
	}

	section := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "HIGH RISK"):
			section = "high"
			continue
		case strings.Contains(upper, "MEDIUM RISK"):
			section = "medium"
			continue
		case strings.Contains(upper, "RECOMMENDATION"):
			section = "recommendations"
			continue
		case strings.Contains(upper, "COMPLIANCE"):
			section = "compliance"
			continue
		}

		if !strings.HasPrefix(line, "-") {
			continue
		}
		entry := strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if entry == "" {
			continue
		}

		switch section {
		case "high":
			analysis.HighRisks = append(analysis.HighRisks, entry)
		case "medium":
			analysis.MediumRisks = append(analysis.MediumRisks, entry)
		case "recommendations":
			analysis.Recommendations = append(analysis.Recommendations, entry)
		case "compliance":
			analysis.ComplianceNotes = append(analysis.ComplianceNotes, entry)
		}
	}

	return analysis
}
