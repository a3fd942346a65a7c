package model

// Claim represents an atomic, checkable statement extracted from the input text
type Claim struct {
	ID              string          `json:"id"`
	Statement       string          `json:"statement"`
	Centrality      Centrality      `json:"centrality,omitempty"`       // Importance to the overall thesis
	Confidence      *int            `json:"confidence,omitempty"`       // Extraction confidence 0-100 (nil = unknown)
	ThesisRelevance ThesisRelevance `json:"thesis_relevance,omitempty"` // Whether the claim bears on the thesis
	HarmPotential   HarmPotential   `json:"harm_potential,omitempty"`
	IsCentral       bool            `json:"is_central,omitempty"` // Central claims bypass gate rejection
	IsCounterClaim  bool            `json:"is_counter_claim,omitempty"`
	IsContested     bool            `json:"is_contested,omitempty"`
	ContestedBy     string          `json:"contested_by,omitempty"`  // Who disputes the claim
	Contestation    string          `json:"contestation,omitempty"`  // Text of the contesting argument
	FactualBasis    FactualBasis    `json:"factual_basis,omitempty"` // Basis of the contestation
	TruthPercentage int             `json:"truth_percentage"`        // Verdict for this claim (0-100)
}

// ConfidenceOrDefault resolves the extraction confidence, defaulting to 50
// when the extraction stage did not provide one.
func (c Claim) ConfidenceOrDefault() int {
	if c.Confidence == nil {
		return 50
	}
	return *c.Confidence
}

// RelevanceOrDefault resolves thesis relevance, defaulting to direct when unset.
func (c Claim) RelevanceOrDefault() ThesisRelevance {
	if c.ThesisRelevance == "" {
		return RelevanceDirect
	}
	return c.ThesisRelevance
}

// Centrality describes how important a claim is to the overall thesis
type Centrality string

const (
	CentralityHigh   Centrality = "high"
	CentralityMedium Centrality = "medium"
	CentralityLow    Centrality = "low"
)

// ThesisRelevance describes whether a claim bears on the thesis under analysis
type ThesisRelevance string

const (
	RelevanceDirect     ThesisRelevance = "direct"
	RelevanceTangential ThesisRelevance = "tangential"
	RelevanceIrrelevant ThesisRelevance = "irrelevant"
)

// HarmPotential classifies the real-world stakes of a claim being wrong
type HarmPotential string

const (
	HarmHigh   HarmPotential = "high"
	HarmMedium HarmPotential = "medium"
	HarmLow    HarmPotential = "low"
)

// FactualBasis classifies the grounding of a contestation.
//
// The contested/doubted distinction: a claim contested with documented
// evidence (established, disputed) loses verdict weight; a claim merely
// doubted without evidence (opinion) keeps full weight.
type FactualBasis string

const (
	BasisEstablished FactualBasis = "established" // Documented counter-evidence exists
	BasisDisputed    FactualBasis = "disputed"    // Contested, evidence quality unclear
	BasisAlleged     FactualBasis = "alleged"     // Asserted without documentation
	BasisOpinion     FactualBasis = "opinion"     // Bare criticism, no evidence
	BasisUnknown     FactualBasis = "unknown"     // Not yet classified
)
