package gate

import (
	"strings"

	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/patterns"
)

// centralOverridePrefix marks a failure reason retained on a claim that
// passed only because it is central.
const centralOverridePrefix = "central claim override: "

// stopwords excluded from the content-word count. Tokens shorter than four
// characters are excluded anyway, so only longer function words appear here.
var stopwords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "from": {}, "have": {}, "been": {},
	"were": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"there": {}, "their": {}, "about": {}, "which": {}, "when": {},
	"where": {}, "while": {}, "because": {}, "through": {}, "during": {},
	"other": {}, "these": {}, "those": {}, "than": {}, "then": {},
	"them": {}, "they": {}, "also": {}, "into": {}, "over": {}, "under": {},
	"very": {}, "more": {}, "most": {}, "some": {}, "such": {}, "only": {},
	"does": {}, "being": {}, "after": {}, "before": {},
}

// Gate1 is the pre-research claim validation gate: it decides whether a
// claim is verifiable enough to research at all.
type Gate1 struct {
	reg *patterns.Registry
}

// NewGate1 creates the gate. A nil registry falls back to the defaults.
func NewGate1(reg *patterns.Registry) *Gate1 {
	if reg == nil {
		reg = patterns.NewRegistry(nil)
	}
	return &Gate1{reg: reg}
}

// Validate classifies a claim and decides whether it passes the gate.
// Central claims always pass; their failure reasons are retained with a
// visible prefix so downstream consumers can display a caveat.
func (g *Gate1) Validate(claim model.Claim) model.ClaimValidation {
	text := claim.Statement

	opinionScore := boundedScore(g.reg.CountMatches(text, patterns.GroupOpinionMarkers))
	specificityScore := boundedScore(g.reg.CountMatches(text, patterns.GroupSpecificityMarkers))
	futureOriented := g.reg.MatchesAny(text, patterns.GroupFutureMarkers)
	contentWords := countContentWords(text)

	v := model.ClaimValidation{
		ClaimID:          claim.ID,
		OpinionScore:     opinionScore,
		SpecificityScore: specificityScore,
		FutureOriented:   futureOriented,
		ContentWords:     contentWords,
	}

	switch {
	case futureOriented:
		v.ClaimType = model.ClaimTypePrediction
	case opinionScore > 0.5:
		v.ClaimType = model.ClaimTypeOpinion
	case specificityScore >= 0.3 && opinionScore <= 0.3:
		v.ClaimType = model.ClaimTypeFactual
	default:
		v.ClaimType = model.ClaimTypeAmbiguous
	}

	var reasons []string
	switch v.ClaimType {
	case model.ClaimTypePrediction:
		reasons = append(reasons, "future-oriented claim cannot be verified against current evidence")
	case model.ClaimTypeOpinion:
		reasons = append(reasons, "claim reads as opinion rather than a checkable assertion")
	}
	// Deliberately permissive: both conditions must hold, so verifiable
	// but non-numeric claims (comparisons, mechanisms) are not discarded.
	if contentWords < 3 && specificityScore < 0.3 {
		reasons = append(reasons, "claim is content-poor: too few content words and no specific anchors")
	}

	v.Passed = len(reasons) == 0
	v.FailureReasons = reasons

	if !v.Passed && claim.IsCentral {
		v.Passed = true
		for i, r := range v.FailureReasons {
			v.FailureReasons[i] = centralOverridePrefix + r
		}
	}

	return v
}

// boundedScore maps a raw match count to a 0-1 score saturating at 3.
func boundedScore(matches int) float64 {
	score := float64(matches) / 3
	if score > 1 {
		return 1
	}
	return score
}

// countContentWords counts tokens of at least four characters that are not
// stopwords.
func countContentWords(text string) int {
	count := 0
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,;:!?\"'()[]")
		if len(tok) < 4 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		count++
	}
	return count
}
