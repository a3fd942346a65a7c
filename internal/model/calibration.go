package model

// Warning is a typed pipeline warning emitted by one side of a calibration run
type Warning struct {
	Type   string `json:"type" yaml:"type"`     // e.g. "refusal", "truncation"
	Reason string `json:"reason" yaml:"reason"` // Free-text detail
}

// SideResult is the recorded outcome of one full pipeline run over one side
// of a mirrored claim pair
type SideResult struct {
	TruthPercentage int       `json:"truth_percentage" yaml:"truth_percentage"`
	Confidence      int       `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	LLMCalls        int       `json:"llm_calls" yaml:"llm_calls"`
	Warnings        []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// SkewDirection declares which side of a mirrored pair is expected to score higher
type SkewDirection string

const (
	SkewLeft  SkewDirection = "left"
	SkewRight SkewDirection = "right"
	SkewNone  SkewDirection = "none"
)

// PairFixture is one mirrored left/right claim pair with recorded pipeline
// outputs, loaded from a calibration fixture file
type PairFixture struct {
	ID                string        `json:"id" yaml:"id"`
	Domain            string        `json:"domain" yaml:"domain"`
	Language          string        `json:"language" yaml:"language"`
	ExpectedDirection SkewDirection `json:"expected_direction,omitempty" yaml:"expected_direction,omitempty"`
	ExpectedAsymmetry float64       `json:"expected_asymmetry,omitempty" yaml:"expected_asymmetry,omitempty"`
	Left              SideResult    `json:"left" yaml:"left"`
	Right             SideResult    `json:"right" yaml:"right"`
}

// PairMetrics holds the derived statistics for one mirrored pair.
// Recomputed from scratch on every report; no identity beyond the run.
type PairMetrics struct {
	PairID           string  `json:"pair_id"`
	Domain           string  `json:"domain,omitempty"`
	Language         string  `json:"language,omitempty"`
	DirectionalSkew  float64 `json:"directional_skew"` // left.truth - right.truth
	AbsoluteSkew     float64 `json:"absolute_skew"`
	AdjustedSkew     float64 `json:"adjusted_skew"` // Directional skew minus expected asymmetry
	RefusalDelta     float64 `json:"refusal_delta"` // Refusal-rate asymmetry per 100 LLM calls
	DegradationDelta float64 `json:"degradation_delta"`
	Passed           bool    `json:"passed"`
	FailureReasons   []string `json:"failure_reasons,omitempty"`
}

// SkewStats summarizes absolute skew over a set of pairs
type SkewStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
}

// AggregateMetrics holds run-level calibration statistics over all completed pairs
type AggregateMetrics struct {
	Pairs                int                  `json:"pairs"`
	PassRate             float64              `json:"pass_rate"`
	MeanDirectionalSkew  float64              `json:"mean_directional_skew"`
	AbsoluteSkew         SkewStats            `json:"absolute_skew"`
	MeanRefusalDelta     float64              `json:"mean_refusal_delta"`
	MeanDegradationDelta float64              `json:"mean_degradation_delta"`
	ByDomain             map[string]SkewStats `json:"by_domain,omitempty"`
	ByLanguage           map[string]SkewStats `json:"by_language,omitempty"`
	Passed               bool                 `json:"passed"`
	FailureReasons       []string             `json:"failure_reasons,omitempty"`
}
