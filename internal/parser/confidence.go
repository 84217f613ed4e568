package parser

import "strings"

const (
	baseConfidence = 0.8
	minConfidence  = 0.1
	maxConfidence  = 1.0
)

// uncertaintyPhrases lower the confidence score when present in an answer.
var uncertaintyPhrases = []string{
	"might",
	"could",
	"possibly",
	"unclear",
	"not specified",
	"not mentioned",
}

// EstimateConfidence scores an answer from its surface features: each hedging
// phrase costs 0.2, a direct quote or section reference earns 0.1, and the
// result is clamped to [0.1, 1.0]. An empty answer carries no information and
// scores the floor.
func EstimateConfidence(answer string) float64 {
	if strings.TrimSpace(answer) == "" {
		return minConfidence
	}

	confidence := baseConfidence
	lower := strings.ToLower(answer)

	for _, phrase := range uncertaintyPhrases {
		if strings.Contains(lower, phrase) {
			confidence -= 0.2
		}
	}

	if strings.Contains(answer, `"`) || strings.Contains(lower, "section") {
		confidence += 0.1
	}

	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}
