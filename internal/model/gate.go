package model

// ClaimType classifies a claim's verifiability before research (Gate 1)
type ClaimType string

const (
	ClaimTypeFactual    ClaimType = "factual"
	ClaimTypeOpinion    ClaimType = "opinion"
	ClaimTypePrediction ClaimType = "prediction"
	ClaimTypeAmbiguous  ClaimType = "ambiguous"
)

// ClaimValidation is the immutable result of the pre-research quality gate.
//
// A central claim always passes; the failure reason is retained (prefixed)
// so downstream consumers can surface the caveat.
type ClaimValidation struct {
	ClaimID          string    `json:"claim_id"`
	Passed           bool      `json:"passed"`
	ClaimType        ClaimType `json:"claim_type"`
	OpinionScore     float64   `json:"opinion_score"`     // 0-1
	SpecificityScore float64   `json:"specificity_score"` // 0-1
	FutureOriented   bool      `json:"future_oriented"`
	ContentWords     int       `json:"content_words"`
	FailureReasons   []string  `json:"failure_reasons,omitempty"`
}

// ConfidenceTier classifies a verdict's evidential confidence (Gate 4)
type ConfidenceTier string

const (
	TierInsufficient ConfidenceTier = "insufficient"
	TierLow          ConfidenceTier = "low"
	TierMedium       ConfidenceTier = "medium"
	TierHigh         ConfidenceTier = "high"
)

// VerdictValidation is the immutable result of the post-research quality gate.
// UncertaintyMarkers is diagnostic only and never gates publication.
type VerdictValidation struct {
	Publishable        bool           `json:"publishable"`
	Tier               ConfidenceTier `json:"tier"`
	EvidenceCount      int            `json:"evidence_count"`
	AvgSourceQuality   float64        `json:"avg_source_quality"`
	AgreementRatio     float64        `json:"agreement_ratio"`
	UncertaintyMarkers int            `json:"uncertainty_markers"`
	FailureReasons     []string       `json:"failure_reasons,omitempty"`
}
