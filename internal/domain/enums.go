package domain

// ClauseCategory is the closed set of legal clause types the analyzer knows about.
type ClauseCategory string

const (
	ClauseTermination          ClauseCategory = "TERMINATION"
	ClausePayment              ClauseCategory = "PAYMENT"
	ClauseIndemnification      ClauseCategory = "INDEMNIFICATION"
	ClauseConfidentiality      ClauseCategory = "CONFIDENTIALITY"
	ClauseIntellectualProperty ClauseCategory = "INTELLECTUAL_PROPERTY"
	ClauseForceMajeure         ClauseCategory = "FORCE_MAJEURE"
	ClauseGoverningLaw         ClauseCategory = "GOVERNING_LAW"
	ClauseWarranties           ClauseCategory = "WARRANTIES"
	ClauseLimitationLiability  ClauseCategory = "LIMITATION_LIABILITY"
	ClauseAssignment           ClauseCategory = "ASSIGNMENT"
	ClauseAmendment            ClauseCategory = "AMENDMENT"
	ClauseDelivery             ClauseCategory = "DELIVERY"
)

// ClauseCategoryInfo describes a clause category for prompting and rendering.
type ClauseCategoryInfo struct {
	Description string
	Color       string
}

// ClauseCategories maps every known category to its description and highlight color.
var ClauseCategories = map[ClauseCategory]ClauseCategoryInfo{
	ClauseTermination:          {"Clauses related to contract termination, expiry, or cancellation", "#ffcccc"},
	ClausePayment:              {"Payment terms, fees, invoicing, and financial obligations", "#ccffcc"},
	ClauseIndemnification:      {"Indemnity, liability, and hold harmless provisions", "#ffcc99"},
	ClauseConfidentiality:      {"Non-disclosure and confidentiality requirements", "#ccccff"},
	ClauseIntellectualProperty: {"IP rights, ownership, and licensing terms", "#ffccff"},
	ClauseForceMajeure:         {"Force majeure and unforeseeable circumstances", "#ffffcc"},
	ClauseGoverningLaw:         {"Jurisdiction, governing law, and dispute resolution", "#ccffff"},
	ClauseWarranties:           {"Warranties, representations, and guarantees", "#f0ccff"},
	ClauseLimitationLiability:  {"Liability limitations and damage caps", "#ffccdd"},
	ClauseAssignment:           {"Assignment and transfer of rights provisions", "#ccffdd"},
	ClauseAmendment:            {"Contract modification and amendment procedures", "#ddccff"},
	ClauseDelivery:             {"Delivery terms, timelines, and performance obligations", "#ddffcc"},
}

// DefaultHighlightColor is used if a clause somehow carries an unknown category.
const DefaultHighlightColor = "#f0f0f0"

// AllClauseCategories returns the category set in a stable order.
func AllClauseCategories() []ClauseCategory {
	return []ClauseCategory{
		ClauseTermination,
		ClausePayment,
		ClauseIndemnification,
		ClauseConfidentiality,
		ClauseIntellectualProperty,
		ClauseForceMajeure,
		ClauseGoverningLaw,
		ClauseWarranties,
		ClauseLimitationLiability,
		ClauseAssignment,
		ClauseAmendment,
		ClauseDelivery,
	}
}

// IsValidClauseCategory reports whether c is a member of the closed category set.
func IsValidClauseCategory(c ClauseCategory) bool {
	_, ok := ClauseCategories[c]
	return ok
}

// Importance grades how critical a clause is.
type Importance string

const (
	ImportanceHigh   Importance = "HIGH"
	ImportanceMedium Importance = "MEDIUM"
	ImportanceLow    Importance = "LOW"
)

// IsValidImportance reports whether i is a known importance grade.
func IsValidImportance(i Importance) bool {
	switch i {
	case ImportanceHigh, ImportanceMedium, ImportanceLow:
		return true
	}
	return false
}

// EntityCategory is the closed set of named-entity categories.
type EntityCategory string

const (
	EntityPersons         EntityCategory = "PERSONS"
	EntityOrganizations   EntityCategory = "ORGANIZATIONS"
	EntityLocations       EntityCategory = "LOCATIONS"
	EntityDates           EntityCategory = "DATES"
	EntityMonetaryValues  EntityCategory = "MONETARY_VALUES"
	EntityLegalReferences EntityCategory = "LEGAL_REFERENCES"
	EntityAgreements      EntityCategory = "AGREEMENTS"
	EntityLegalConcepts   EntityCategory = "LEGAL_CONCEPTS"
)

// EntityCategories maps every entity category to its prompt description.
var EntityCategories = map[EntityCategory]string{
	EntityPersons:         "Names of individuals, lawyers, judges, witnesses",
	EntityOrganizations:   "Company names, law firms, courts, government bodies",
	EntityLocations:       "Addresses, cities, states, countries, jurisdictions",
	EntityDates:           "Important dates, deadlines, effective dates",
	EntityMonetaryValues:  "Financial amounts, fees, damages, penalties",
	EntityLegalReferences: "Statutes, regulations, case law, legal codes",
	EntityAgreements:      "Contract types, agreement names, legal instruments",
	EntityLegalConcepts:   "Legal terms, causes of action, legal principles",
}

// AllEntityCategories returns the entity category set in a stable order.
func AllEntityCategories() []EntityCategory {
	return []EntityCategory{
		EntityPersons,
		EntityOrganizations,
		EntityLocations,
		EntityDates,
		EntityMonetaryValues,
		EntityLegalReferences,
		EntityAgreements,
		EntityLegalConcepts,
	}
}

// RelationshipCategory is the closed set of entity relationship types.
type RelationshipCategory string

const (
	RelContractual RelationshipCategory = "CONTRACTUAL_RELATIONSHIPS"
	RelObligations RelationshipCategory = "LEGAL_OBLIGATIONS"
	RelAuthority   RelationshipCategory = "AUTHORITY_RELATIONSHIPS"
	RelFinancial   RelationshipCategory = "FINANCIAL_RELATIONSHIPS"
)

// AllRelationshipCategories returns the relationship category set in a stable order.
func AllRelationshipCategories() []RelationshipCategory {
	return []RelationshipCategory{RelContractual, RelObligations, RelAuthority, RelFinancial}
}

// PipelineStatus is the lifecycle state of one document run.
type PipelineStatus string

const (
	StatusProcessing PipelineStatus = "processing"
	StatusCompleted  PipelineStatus = "completed"
	StatusFailed     PipelineStatus = "failed"
)

// SummaryStyle selects the depth of the generated summary.
type SummaryStyle string

const (
	SummaryComprehensive SummaryStyle = "comprehensive"
	SummaryBrief         SummaryStyle = "brief"
	SummaryExecutive     SummaryStyle = "executive"
)

// IsValidSummaryStyle reports whether s is a known summary style.
func IsValidSummaryStyle(s SummaryStyle) bool {
	switch s {
	case SummaryComprehensive, SummaryBrief, SummaryExecutive:
		return true
	}
	return false
}
