package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions(t *testing.T) {
	raw := `Here are some questions:
1. What are the termination rights of each party?
2. When are invoices due under this agreement?
- What law governs disputes between the parties?
Not a question line
4. Short q?`

	questions := ParseQuestions(raw)

	assert.Contains(t, questions, "What are the termination rights of each party?")
	assert.Contains(t, questions, "When are invoices due under this agreement?")
	assert.Contains(t, questions, "What law governs disputes between the parties?")
	// Too short to keep.
	assert.NotContains(t, questions, "Short q?")
}

func TestParseQuestions_TopsUpFromBank(t *testing.T) {
	questions := ParseQuestions("1. What are the payment terms and financial obligations?")

	require.GreaterOrEqual(t, len(questions), 6)
	// The parsed question stays first and is not duplicated by the bank.
	assert.Equal(t, "What are the payment terms and financial obligations?", questions[0])
	count := 0
	for _, q := range questions {
		if q == "What are the payment terms and financial obligations?" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestParseQuestions_CapsAtTen(t *testing.T) {
	raw := ""
	for i := 0; i < 15; i++ {
		raw += "- What is the meaning of provision number " + string(rune('a'+i)) + " here?\n"
	}
	assert.Len(t, ParseQuestions(raw), 10)
}

func TestParseBulletPoints(t *testing.T) {
	raw := `Summary of the agreement:
- Parties: Acme Corp and Widget LLC
* Term: two years from the effective date
1. Payment: net thirty days
plain prose line is ignored`

	points := ParseBulletPoints(raw)
	assert.Equal(t, []string{
		"Parties: Acme Corp and Widget LLC",
		"Term: two years from the effective date",
		"Payment: net thirty days",
	}, points)
}

func TestParseKeyPoints_CapsAtTen(t *testing.T) {
	raw := ""
	for i := 0; i < 14; i++ {
		raw += "- key point about this agreement\n"
	}
	assert.Len(t, ParseKeyPoints(raw), 10)
}

func TestParseRiskAnalysis(t *testing.T) {
	raw := `HIGH RISK:
- Unlimited liability exposure for data breaches
- No cap on indemnification obligations

MEDIUM RISK:
- Auto-renewal without notice period

RECOMMENDATIONS:
- Negotiate a liability cap

COMPLIANCE:
- GDPR processor terms are missing`

	analysis := ParseRiskAnalysis(raw)
	require.NotNil(t, analysis)

	assert.Equal(t, []string{
		"Unlimited liability exposure for data breaches",
		"No cap on indemnification obligations",
	}, analysis.HighRisks)
	assert.Equal(t, []string{"Auto-renewal without notice period"}, analysis.MediumRisks)
	assert.Equal(t, []string{"Negotiate a liability cap"}, analysis.Recommendations)
	assert.Equal(t, []string{"GDPR processor terms are missing"}, analysis.ComplianceNotes)
}

func TestParseRiskAnalysis_IgnoresUnlabeledEntries(t *testing.T) {
	raw := `- floats before any section header

HIGH RISK:
- a real high risk entry`

	analysis := ParseRiskAnalysis(raw)
	assert.Equal(t, []string{"a real high risk entry"}, analysis.HighRisks)
	assert.Empty(t, analysis.MediumRisks)
}
