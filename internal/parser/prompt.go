package parser

import (
	"fmt"
	"strings"

	"lexora/internal/domain"
)

// Prompt builders for each pipeline stage. Every builder embeds the document
// text directly; callers are responsible for truncating oversized inputs.

// SummaryPrompt asks for a document summary in one of the supported styles.
func SummaryPrompt(text string, style domain.SummaryStyle) string {
	var instruction string
	switch style {
	case domain.SummaryBrief:
		instruction = "Provide a brief 2-3 sentence summary of this legal document."
	case domain.SummaryExecutive:
		instruction = "Provide an executive summary of this legal document suitable for business decision-makers. Focus on obligations, risks, and key commercial terms."
	default:
		instruction = "Provide a comprehensive summary of this legal document. Cover the parties, purpose, key terms, obligations, and notable provisions."
	}
	return fmt.Sprintf("%s\n\nDocument:\n%s", instruction, text)
}

// KeyPointsPrompt asks for the document's most important points as a list.
func KeyPointsPrompt(text string) string {
	return fmt.Sprintf(
		"List the most important points of this legal document as bullet points, one per line starting with \"-\". Limit the list to 10 points.\n\nDocument:\n%s",
		text)
}

// ClausesPrompt asks for clause extraction restricted to the given categories
// (nil means all), emitting the JSON array format ParseClauses expects.
func ClausesPrompt(text string, categories []domain.ClauseCategory) string {
	if len(categories) == 0 {
		categories = domain.AllClauseCategories()
	}

	var b strings.Builder
	b.WriteString("Extract legal clauses from the following document. Look for these clause types:\n\n")
	for _, category := range categories {
		info := domain.ClauseCategories[category]
		fmt.Fprintf(&b, "- %s: %s\n", category, info.Description)
	}
	b.WriteString("\nRespond with a JSON array only. Each element must have these fields:\n")
	b.WriteString(`[{"clause_type": "CATEGORY", "clause_text": "exact text from the document", "context": "brief explanation", "importance": "HIGH|MEDIUM|LOW", "section": "section name or number"}]`)
	b.WriteString("\n\nUse the exact text from the document for clause_text so the clause can be located later.\n\nDocument:\n")
	b.WriteString(text)
	return b.String()
}

// EntitiesPrompt asks for named entities grouped by category, emitting the
// JSON object format ParseEntities expects.
func EntitiesPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract named entities from this legal document, grouped into these categories:\n\n")
	for _, category := range domain.AllEntityCategories() {
		fmt.Fprintf(&b, "- %s: %s\n", category, domain.EntityCategories[category])
	}
	b.WriteString("\nRespond with a JSON object only, mapping each category to an array of strings:\n")
	b.WriteString(`{"PERSONS": ["..."], "ORGANIZATIONS": ["..."]}`)
	b.WriteString("\n\nOmit categories with no entities.\n\nDocument:\n")
	b.WriteString(text)
	return b.String()
}

// RelationshipsPrompt asks for relationships between the document's entities.
func RelationshipsPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Identify relationships between the entities in this legal document, grouped into these categories:\n\n")
	for _, category := range domain.AllRelationshipCategories() {
		fmt.Fprintf(&b, "- %s\n", category)
	}
	b.WriteString("\nRespond with a JSON object only, mapping each category to an array of short relationship descriptions:\n")
	b.WriteString(`{"CONTRACTUAL_RELATIONSHIPS": ["Party A engages Party B as contractor"]}`)
	b.WriteString("\n\nDocument:\n")
	b.WriteString(text)
	return b.String()
}

// BulletPointsPrompt asks for a bullet-point digest of the document.
func BulletPointsPrompt(text string) string {
	return fmt.Sprintf(
		"Summarize this legal document as concise bullet points, one per line starting with \"-\". Cover parties, obligations, payments, deadlines, and risks.\n\nDocument:\n%s",
		text)
}

// RisksPrompt asks for a risk analysis in the labeled-section format
// ParseRiskAnalysis expects.
func RisksPrompt(text string) string {
	return fmt.Sprintf(`Analyze this legal document for risks. Structure your response with exactly these four sections:

HIGH RISK:
- each high risk item on its own line

MEDIUM RISK:
- each medium risk item on its own line

RECOMMENDATIONS:
- each recommendation on its own line

COMPLIANCE:
- each compliance note on its own line

Document:
%s`, text)
}

// QuestionsPrompt asks for suggested questions about the document.
func QuestionsPrompt(text string) string {
	return fmt.Sprintf(
		"Suggest 8 insightful questions a reader might ask about this legal document. Write one question per line, each ending with a question mark.\n\nDocument:\n%s",
		text)
}

// AnswerPrompt asks a question against the document, with up to three
// relevant clauses appended as focused context.
func AnswerPrompt(text, question string, contextClauses []domain.Clause) string {
	var b strings.Builder
	b.WriteString("Answer the question using only the document below. Quote the document where possible and mention the section if one is given. If the document does not contain the answer, say so.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	if len(contextClauses) > 0 {
		b.WriteString("Relevant clauses:\n")
		for _, c := range contextClauses {
			fmt.Fprintf(&b, "- [%s, %s] %s\n", c.Category, c.Section, c.Text)
		}
		b.WriteString("\n")
	}
	b.WriteString("Document:\n")
	b.WriteString(text)
	return b.String()
}

// SearchPrompt asks for document excerpts relevant to a query, in the
// result-block format ParseSearchHits expects.
func SearchPrompt(text, query string) string {
	return fmt.Sprintf(`Find the passages in this document most relevant to the query: %s

Return at most 5 results. Format each result exactly as:

**Result 1:**
Text: the exact excerpt from the document
Relevance: why this excerpt matches the query
Context: where in the document it appears

Document:
%s`, query, text)
}
