package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexora/internal/domain"
)

func testClauses() []domain.Clause {
	return []domain.Clause{
		{Category: domain.ClausePayment, Text: "Payment is due within thirty days of the invoice date.", Importance: domain.ImportanceHigh},
		{Category: domain.ClauseTermination, Text: "Either party may terminate with sixty days written notice.", Importance: domain.ImportanceHigh},
		{Category: domain.ClauseLimitationLiability, Text: "Total damages are capped at the fees paid in the prior year.", Importance: domain.ImportanceMedium},
		{Category: domain.ClauseIndemnification, Text: "The supplier shall indemnify the customer against third party claims.", Importance: domain.ImportanceLow},
		{Category: domain.ClauseConfidentiality, Text: "Both parties shall keep the agreement terms strictly confidential.", Importance: domain.ImportanceMedium},
	}
}

func TestRelevantClauses_KeywordRouting(t *testing.T) {
	relevant := RelevantClauses("What are the payment terms?", testClauses())
	require.Len(t, relevant, 1)
	assert.Equal(t, domain.ClausePayment, relevant[0].Category)
}

func TestRelevantClauses_MultiCategoryKeyword(t *testing.T) {
	relevant := RelevantClauses("What is our liability exposure?", testClauses())
	require.Len(t, relevant, 2)
	assert.Equal(t, domain.ClauseLimitationLiability, relevant[0].Category)
	assert.Equal(t, domain.ClauseIndemnification, relevant[1].Category)
}

func TestRelevantClauses_OverlappingKeywordsRepeatClauses(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.ClauseGoverningLaw, Text: "Delaware law governs this agreement and all disputes.", Importance: domain.ImportanceMedium},
	}

	// "law" and "jurisdiction" both route to GOVERNING_LAW, so the clause is
	// collected once per keyword.
	relevant := RelevantClauses("Which law and jurisdiction apply?", clauses)
	require.Len(t, relevant, 2)
	assert.Equal(t, relevant[0], relevant[1])
	assert.Equal(t, domain.ClauseGoverningLaw, relevant[0].Category)
}

func TestRelevantClauses_HighImportanceFallback(t *testing.T) {
	relevant := RelevantClauses("What stands out here?", testClauses())
	require.Len(t, relevant, 2)
	for _, c := range relevant {
		assert.Equal(t, domain.ImportanceHigh, c.Importance)
	}
}

func TestRelevantClauses_CapsAtThree(t *testing.T) {
	clauses := []domain.Clause{
		{Category: domain.ClausePayment, Text: "First payment clause in the agreement document text.", Importance: domain.ImportanceLow},
		{Category: domain.ClausePayment, Text: "Second payment clause in the agreement document text.", Importance: domain.ImportanceLow},
		{Category: domain.ClausePayment, Text: "Third payment clause in the agreement document text.", Importance: domain.ImportanceLow},
		{Category: domain.ClausePayment, Text: "Fourth payment clause in the agreement document text.", Importance: domain.ImportanceLow},
	}

	relevant := RelevantClauses("Tell me about payment.", clauses)
	assert.Len(t, relevant, 3)
}

func TestRelevantClauses_NoClauses(t *testing.T) {
	assert.Empty(t, RelevantClauses("What are the payment terms?", nil))
}
