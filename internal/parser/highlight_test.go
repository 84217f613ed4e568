package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexora/internal/domain"
)

func TestHighlightClauses(t *testing.T) {
	text := "Payment is due within thirty days. Either party may terminate with notice."
	clauses := []domain.Clause{
		{Category: domain.ClausePayment, Text: "Payment is due within thirty days.", Importance: domain.ImportanceHigh},
		{Category: domain.ClauseTermination, Text: "Either party may terminate with notice.", Importance: domain.ImportanceMedium},
	}

	out := HighlightClauses(text, clauses)

	assert.Contains(t, out, `background-color: #ccffcc`)
	assert.Contains(t, out, `background-color: #ffcccc`)
	assert.Contains(t, out, `title="PAYMENT: HIGH"`)
	assert.Contains(t, out, `title="TERMINATION: MEDIUM"`)
	assert.Contains(t, out, ">Payment is due within thirty days.</span>")
}

func TestHighlightClauses_LongestFirst(t *testing.T) {
	text := "The fee is payable monthly in advance by the customer."
	clauses := []domain.Clause{
		{Category: domain.ClausePayment, Text: "The fee is payable", Importance: domain.ImportanceLow},
		{Category: domain.ClausePayment, Text: "The fee is payable monthly in advance", Importance: domain.ImportanceHigh},
	}

	out := HighlightClauses(text, clauses)

	// The longer clause wins the shared prefix; the shorter one no longer
	// matches and leaves no nested span behind.
	assert.Contains(t, out, ">The fee is payable monthly in advance</span>")
	assert.Equal(t, 1, strings.Count(out, "<span"))
}

func TestHighlightClauses_FirstOccurrenceOnly(t *testing.T) {
	text := "Notice is required. Some filler text. Notice is required."
	clauses := []domain.Clause{
		{Category: domain.ClauseTermination, Text: "Notice is required.", Importance: domain.ImportanceMedium},
	}

	out := HighlightClauses(text, clauses)

	assert.Equal(t, 1, strings.Count(out, "<span"))
	// The second occurrence stays plain.
	assert.True(t, strings.HasSuffix(out, "Notice is required."))
}

func TestHighlightClauses_MissingTextUntouched(t *testing.T) {
	text := "Nothing here matches."
	clauses := []domain.Clause{
		{Category: domain.ClausePayment, Text: "Payment is due in thirty days.", Importance: domain.ImportanceHigh},
	}

	assert.Equal(t, text, HighlightClauses(text, clauses))
}

func TestHighlightClauses_EmptyInputs(t *testing.T) {
	assert.Equal(t, "", HighlightClauses("", []domain.Clause{{Text: "x"}}))
	assert.Equal(t, "some text", HighlightClauses("some text", nil))
}
