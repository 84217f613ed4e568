package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexora/internal/domain"
)

func TestParseClauses_StrictJSON(t *testing.T) {
	raw := `Here are the extracted clauses:
[
  {"clause_type": "PAYMENT", "clause_text": "Payment shall be made within thirty days of invoice.", "context": "Net-30 terms", "importance": "HIGH", "section": "4.2"},
  {"clause_type": "termination", "clause_text": "Either party may terminate this agreement with notice.", "context": "", "importance": "bogus", "section": ""}
]
Let me know if you need more.`

	clauses := ParseClauses(raw)
	require.Len(t, clauses, 2)

	assert.Equal(t, domain.ClausePayment, clauses[0].Category)
	assert.Equal(t, "Payment shall be made within thirty days of invoice.", clauses[0].Text)
	assert.Equal(t, domain.ImportanceHigh, clauses[0].Importance)
	assert.Equal(t, "4.2", clauses[0].Section)

	// Category is normalized, unknown importance defaults, empty section is labeled.
	assert.Equal(t, domain.ClauseTermination, clauses[1].Category)
	assert.Equal(t, domain.ImportanceMedium, clauses[1].Importance)
	assert.Equal(t, "Unknown", clauses[1].Section)
}

func TestParseClauses_DropsInvalidRecords(t *testing.T) {
	raw := `[
  {"clause_type": "SOMETHING_ELSE", "clause_text": "This category does not exist in the vocabulary."},
  {"clause_type": "PAYMENT", "clause_text": "too short"},
  {"clause_type": "PAYMENT", "clause_text": "Fees are due on the first business day of each month."}
]`

	clauses := ParseClauses(raw)
	require.Len(t, clauses, 1)
	assert.Equal(t, domain.ClausePayment, clauses[0].Category)
}

func TestParseClauses_KeepsDuplicateText(t *testing.T) {
	raw := `[
  {"clause_type": "CONFIDENTIALITY", "clause_text": "Each party shall keep the terms of this agreement confidential."},
  {"clause_type": "CONFIDENTIALITY", "clause_text": "Each party shall keep the terms of this agreement confidential."}
]`

	clauses := ParseClauses(raw)
	assert.Len(t, clauses, 2)
}

func TestParseClauses_FallbackOnMalformedJSON(t *testing.T) {
	raw := `The document contains these clauses:

TERMINATION: found in section 8
Either party may terminate this agreement upon sixty days written notice.

PAYMENT: found in section 4
All invoices are payable within thirty days of receipt by the customer.
importance: HIGH`

	clauses := ParseClauses(raw)
	require.Len(t, clauses, 2)

	assert.Equal(t, domain.ClauseTermination, clauses[0].Category)
	assert.Equal(t, "Either party may terminate this agreement upon sixty days written notice.", clauses[0].Text)
	assert.Equal(t, domain.ImportanceMedium, clauses[0].Importance)
	assert.Equal(t, "Unknown", clauses[0].Section)

	assert.Equal(t, domain.ClausePayment, clauses[1].Category)
	assert.Equal(t, "All invoices are payable within thirty days of receipt by the customer.", clauses[1].Text)
}

func TestParseClauses_FallbackAppendsBodyLines(t *testing.T) {
	raw := `TERMINATION: termination provisions
This agreement may be terminated by either party at any time
provided that sixty days advance written notice has been given.`

	clauses := ParseClauses(raw)
	require.Len(t, clauses, 1)
	assert.Equal(t,
		"This agreement may be terminated by either party at any time provided that sixty days advance written notice has been given.",
		clauses[0].Text)
}

func TestParseClauses_FallbackDropsShortBody(t *testing.T) {
	raw := `PAYMENT: payment stuff
short line`

	clauses := ParseClauses(raw)
	assert.Empty(t, clauses)
}

func TestParseClauses_GarbageYieldsEmpty(t *testing.T) {
	assert.Empty(t, ParseClauses("no structure here at all"))
	assert.Empty(t, ParseClauses(""))
}

func TestSummarizeClauses(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.ClauseTermination, Text: "Either party may terminate with sixty days notice.", Importance: domain.ImportanceHigh},
		{Category: domain.ClausePayment, Text: "Payment is due within thirty days of the invoice date.", Importance: domain.ImportanceMedium},
		{Category: domain.ClausePayment, Text: "Late payments accrue interest at two percent monthly.", Importance: domain.ImportanceHigh},
	}

	summary := SummarizeClauses(clauses)
	require.NotNil(t, summary)

	assert.Equal(t, 3, summary.TotalClauses)
	assert.Equal(t, 2, summary.HighImportance)
	assert.Equal(t, 1, summary.Distribution[domain.ClauseTermination])
	assert.Equal(t, 2, summary.Distribution[domain.ClausePayment])
	assert.Equal(t, 2, summary.ImportanceCounts[domain.ImportanceHigh])
	assert.Equal(t, 1, summary.ImportanceCounts[domain.ImportanceMedium])

	assert.Contains(t, summary.KeyFindings, "Document contains termination provisions")
	assert.Contains(t, summary.KeyFindings, "Payment terms are specified in the document")
	assert.Contains(t, summary.Recommendations, "Review all high-importance clauses carefully")
	// No liability or governing law clauses were found.
	assert.Contains(t, summary.Recommendations, "Consider adding liability limitation clauses")
	assert.Contains(t, summary.Recommendations, "Ensure governing law and jurisdiction are specified")
}

func TestSummarizeClauses_Empty(t *testing.T) {
	summary := SummarizeClauses(nil)
	require.NotNil(t, summary)
	assert.Zero(t, summary.TotalClauses)
	assert.Empty(t, summary.KeyFindings)
	assert.Empty(t, summary.Recommendations)
}
