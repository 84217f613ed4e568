package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is the immutable extracted text of one input file. It is shared
// read-only across all stages of a run and never mutated.
type Document struct {
	Text       string  `json:"text"`
	Length     int     `json:"length"`
	PageCount  int     `json:"page_count"`
	Confidence float64 `json:"confidence"`
}

// Clause is a categorized excerpt of document text expressing a legal provision.
// Clause text is always longer than 20 characters; shorter fragments are
// discarded during parsing as noise.
type Clause struct {
	Category   ClauseCategory `json:"clause_type"`
	Text       string         `json:"clause_text"`
	Context    string         `json:"context"`
	Importance Importance     `json:"importance"`
	Section    string         `json:"section"`
}

// EntityMap groups extracted entity strings by category. Entries within a
// category are unique, trimmed, and capped at 20.
type EntityMap map[EntityCategory][]string

// Total returns the number of entities across all categories.
func (m EntityMap) Total() int {
	n := 0
	for _, list := range m {
		n += len(list)
	}
	return n
}

// RelationshipMap groups relationship descriptions by relationship category.
type RelationshipMap map[RelationshipCategory][]string

// SearchHit is one relevant excerpt returned by a document search.
type SearchHit struct {
	Excerpt   string `json:"excerpt"`
	Relevance string `json:"relevance"`
	Context   string `json:"context"`
}

// AnswerRecord is the outcome of one question asked against a document.
// Records are appended to a caller-owned history and never mutated afterwards.
type AnswerRecord struct {
	Question           string    `json:"question"`
	Answer             string    `json:"answer"`
	Confidence         float64   `json:"confidence"`
	SupportingSpans    []string  `json:"supporting_spans,omitempty"`
	ContextClausesUsed int       `json:"context_clauses_used"`
	Err                string    `json:"error,omitempty"`
	AskedAt            time.Time `json:"asked_at"`
}

// ClauseSummary aggregates the clauses found in one document.
type ClauseSummary struct {
	TotalClauses     int                    `json:"total_clauses"`
	HighImportance   int                    `json:"high_importance"`
	Distribution     map[ClauseCategory]int `json:"clause_distribution"`
	ImportanceCounts map[Importance]int     `json:"importance_distribution"`
	KeyFindings      []string               `json:"key_findings"`
	Recommendations  []string               `json:"recommendations"`
}

// RiskAnalysis holds the section-structured output of the risk stage.
type RiskAnalysis struct {
	HighRisks       []string `json:"high_risks"`
	MediumRisks     []string `json:"medium_risks"`
	Recommendations []string `json:"recommendations"`
	ComplianceNotes []string `json:"compliance_notes"`
}

// AnalysisOptions enables or disables individual pipeline stages for one run.
type AnalysisOptions struct {
	SummaryStyle         SummaryStyle     `json:"summary_style"`
	ExtractClauses       bool             `json:"extract_clauses"`
	ClauseCategories     []ClauseCategory `json:"clause_categories,omitempty"` // nil = all
	GenerateQA           bool             `json:"generate_qa"`
	AnalyzeRisks         bool             `json:"analyze_risks"`
	GenerateBulletPoints bool             `json:"generate_bullet_points"`
	ExtractRelationships bool             `json:"extract_relationships"`
}

// DefaultAnalysisOptions enables every stage except relationship extraction.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		SummaryStyle:         SummaryComprehensive,
		ExtractClauses:       true,
		GenerateQA:           true,
		AnalyzeRisks:         true,
		GenerateBulletPoints: true,
	}
}

// PipelineResult is the per-document aggregate produced by one orchestration
// run. It is mutated stage-by-stage while Status is processing and frozen once
// Status becomes completed or failed. Each result is exclusively owned by the
// run that produced it.
type PipelineResult struct {
	ID       uuid.UUID       `json:"id"`
	FilePath string          `json:"file_path"`
	FileName string          `json:"file_name"`
	Options  AnalysisOptions `json:"analysis_options"`
	Status   PipelineStatus  `json:"status"`
	Error    string          `json:"error,omitempty"`

	Document           *Document       `json:"document,omitempty"`
	Summary            string          `json:"summary,omitempty"`
	KeyPoints          []string        `json:"key_points,omitempty"`
	Entities           EntityMap       `json:"entities,omitempty"`
	Clauses            []Clause        `json:"clauses,omitempty"`
	ClauseSummary      *ClauseSummary  `json:"clause_summary,omitempty"`
	HighlightedText    string          `json:"highlighted_text,omitempty"`
	SuggestedQuestions []string        `json:"suggested_questions,omitempty"`
	BulletPoints       []string        `json:"bullet_points,omitempty"`
	RiskAnalysis       *RiskAnalysis   `json:"risk_analysis,omitempty"`
	Relationships      RelationshipMap `json:"relationships,omitempty"`

	// StageErrors records non-fatal per-stage failures keyed by stage name.
	StageErrors map[string]string `json:"stage_errors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
