package gate

import (
	"fmt"

	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/patterns"
)

// Verdict is the input to the post-research confidence gate: the evidence
// a verdict rests on, its reasoning text, and whether it concerns a central
// claim.
type Verdict struct {
	Evidence  []model.EvidenceItem
	Reasoning string
	IsCentral bool
}

// Gate4 is the post-research verdict confidence gate: it decides whether a
// verdict is confident enough to publish.
type Gate4 struct {
	reg *patterns.Registry
}

// NewGate4 creates the gate. A nil registry falls back to the defaults.
func NewGate4(reg *patterns.Registry) *Gate4 {
	if reg == nil {
		reg = patterns.NewRegistry(nil)
	}
	return &Gate4{reg: reg}
}

// Validate tiers the verdict by evidence count, average source quality and
// evidence agreement. Publishable iff the tier is medium or high, with the
// central-claim override (publish with caveats, reasons preserved).
// Uncertainty markers in the reasoning are recorded but never gate.
func (g *Gate4) Validate(v Verdict) model.VerdictValidation {
	count := len(v.Evidence)
	avgQuality := averageQuality(v.Evidence)
	agreement := agreementRatio(v.Evidence)

	res := model.VerdictValidation{
		EvidenceCount:      count,
		AvgSourceQuality:   avgQuality,
		AgreementRatio:     agreement,
		UncertaintyMarkers: g.reg.CountMatches(v.Reasoning, patterns.GroupUncertaintyMarkers),
	}

	switch {
	case count < 2:
		res.Tier = model.TierInsufficient
	case count >= 3 && avgQuality >= 0.7 && agreement >= 0.8:
		res.Tier = model.TierHigh
	case count >= 2 && avgQuality >= 0.6 && agreement >= 0.6:
		res.Tier = model.TierMedium
	default:
		res.Tier = model.TierLow
	}

	res.Publishable = res.Tier == model.TierMedium || res.Tier == model.TierHigh
	if !res.Publishable {
		res.FailureReasons = append(res.FailureReasons, fmt.Sprintf(
			"verdict confidence %s: %d sources, avg quality %.2f, agreement %.2f",
			res.Tier, count, avgQuality, agreement))
	}

	if !res.Publishable && v.IsCentral {
		res.Publishable = true
		for i, r := range res.FailureReasons {
			res.FailureReasons[i] = centralOverridePrefix + r
		}
	}

	return res
}

// averageQuality averages source-quality scores, 0.5 for unknown sources.
func averageQuality(items []model.EvidenceItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, item := range items {
		sum += item.SourceAuthority.QualityScore()
	}
	return sum / float64(len(items))
}

// agreementRatio is supporting / (supporting + contradicting). Neutral
// items do not count either way. No directional evidence at all reads as
// full agreement about nothing, which the tiering then catches via count.
func agreementRatio(items []model.EvidenceItem) float64 {
	supporting, contradicting := 0, 0
	for _, item := range items {
		switch item.ClaimDirection {
		case model.DirectionSupports:
			supporting++
		case model.DirectionContradicts:
			contradicting++
		}
	}
	if supporting+contradicting == 0 {
		return 1
	}
	return float64(supporting) / float64(supporting+contradicting)
}
