package model

// EvidenceItem represents a statement extracted from a fetched source,
// linked to the claims it supports or contradicts
type EvidenceItem struct {
	ID               string          `json:"id"`
	Statement        string          `json:"statement"`
	Category         Category        `json:"category,omitempty"`
	SourceURL        string          `json:"source_url,omitempty"`
	SourceExcerpt    string          `json:"source_excerpt,omitempty"`
	ProbativeValue   ProbativeValue  `json:"probative_value,omitempty"`
	ClaimDirection   ClaimDirection  `json:"claim_direction,omitempty"`
	RelevantClaimIDs []string        `json:"relevant_claim_ids,omitempty"`
	SourceAuthority  SourceAuthority `json:"source_authority,omitempty"`
	EvidenceScope    string          `json:"evidence_scope,omitempty"` // Research sub-topic this item belongs to
}

// Category classifies the kind of evidence, driving category-specific filter rules
type Category string

const (
	CategoryStatistic      Category = "statistic"
	CategoryExpertQuote    Category = "expert_quote"
	CategoryEvent          Category = "event"
	CategoryLegalProvision Category = "legal_provision"
	CategoryDocument       Category = "document"
	CategoryGeneral        Category = "general"
)

// ProbativeValue is how strongly an item, if true, would move a verdict
type ProbativeValue string

const (
	ProbativeHigh   ProbativeValue = "high"
	ProbativeMedium ProbativeValue = "medium"
	ProbativeLow    ProbativeValue = "low"
)

// ClaimDirection records whether the item supports or contradicts its claims
type ClaimDirection string

const (
	DirectionSupports    ClaimDirection = "supports"
	DirectionContradicts ClaimDirection = "contradicts"
	DirectionNeutral     ClaimDirection = "neutral"
)

// SourceAuthority classifies the publishing source of an evidence item
type SourceAuthority string

const (
	AuthorityAcademic   SourceAuthority = "academic"
	AuthorityGovernment SourceAuthority = "government"
	AuthorityNews       SourceAuthority = "news"
	AuthorityNGO        SourceAuthority = "ngo"
	AuthorityOpinion    SourceAuthority = "opinion"
	AuthorityUnknown    SourceAuthority = "unknown"
)

// QualityScore maps a source authority to a 0-1 quality score.
// Unknown or unclassified sources score 0.5.
func (a SourceAuthority) QualityScore() float64 {
	switch a {
	case AuthorityAcademic, AuthorityGovernment:
		return 0.9
	case AuthorityNews:
		return 0.7
	case AuthorityNGO:
		return 0.6
	case AuthorityOpinion:
		return 0.2
	default:
		return 0.5
	}
}

// FilterReason identifies the single rule that rejected an evidence item
type FilterReason string

const (
	ReasonOpinionSource         FilterReason = "opinion_source"
	ReasonLowProbativeValue     FilterReason = "low_probative_value"
	ReasonStatementTooShort     FilterReason = "statement_too_short"
	ReasonTooVague              FilterReason = "too_vague"
	ReasonExcerptMissing        FilterReason = "excerpt_missing_or_short"
	ReasonMissingSourceURL      FilterReason = "missing_source_url"
	ReasonStatisticNoNumber     FilterReason = "statistic_without_number"
	ReasonQuoteNoAttribution    FilterReason = "quote_without_attribution"
	ReasonEventNoDate           FilterReason = "event_without_temporal_anchor"
	ReasonLegalNoCitation       FilterReason = "legal_provision_without_citation"
	ReasonDuplicate             FilterReason = "duplicate_or_near_duplicate"
)

// FilteredItem pairs a rejected evidence item with the rule that rejected it
type FilteredItem struct {
	Item   EvidenceItem `json:"item"`
	Reason FilterReason `json:"reason"`
}
