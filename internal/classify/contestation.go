package classify

import (
	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/patterns"
)

// Classifier annotates claims with contestation status and harm potential
type Classifier struct {
	reg *patterns.Registry
}

// NewClassifier creates a classifier. A nil registry falls back to the
// default pattern groups.
func NewClassifier(reg *patterns.Registry) *Classifier {
	if reg == nil {
		reg = patterns.NewRegistry(nil)
	}
	return &Classifier{reg: reg}
}

// ValidateContestation re-examines contested claims and downgrades the
// factual basis to opinion when the contesting party is a political,
// government or diplomatic actor and no documented evidence appears in the
// contestation text. Baseline political criticism must not reduce verdict
// weight unless backed by something concrete.
func (c *Classifier) ValidateContestation(claims []model.Claim) []model.Claim {
	out := make([]model.Claim, len(claims))
	copy(out, claims)

	for i, claim := range out {
		if !claim.IsContested {
			continue
		}

		political := c.reg.MatchesAny(claim.ContestedBy, patterns.GroupPoliticalSources) ||
			c.reg.MatchesAny(claim.Contestation, patterns.GroupPoliticalSources)
		documented := c.reg.MatchesAny(claim.Contestation, patterns.GroupDocumentedEvidence)

		if political && !documented {
			out[i].FactualBasis = model.BasisOpinion
		}
	}
	return out
}

// Contestation is the result of detecting contestation in claim text
type Contestation struct {
	IsContested  bool
	FactualBasis model.FactualBasis
	ContestedBy  string
}

// DetectClaimContestation classifies a claim's contestation from its text
// and the research reasoning, in priority order: documented evidence beats
// a political contestor, which beats a bare contestation signal.
func (c *Classifier) DetectClaimContestation(claimText, reasoning string) Contestation {
	combined := claimText + " " + reasoning

	contested := c.reg.MatchesAny(combined, patterns.GroupContestationMarkers)
	if !contested {
		return Contestation{IsContested: false, FactualBasis: model.BasisUnknown}
	}

	if c.reg.MatchesAny(reasoning, patterns.GroupDocumentedEvidence) {
		return Contestation{
			IsContested:  true,
			FactualBasis: model.BasisEstablished,
			ContestedBy:  c.reg.FirstMatch(combined, patterns.GroupDocumentedEvidence),
		}
	}

	if actor := c.reg.FirstMatch(combined, patterns.GroupPoliticalSources); actor != "" {
		// Political contestation without evidence keeps full weight.
		return Contestation{
			IsContested:  true,
			FactualBasis: model.BasisOpinion,
			ContestedBy:  actor,
		}
	}

	return Contestation{IsContested: true, FactualBasis: model.BasisDisputed}
}

// DetectHarmPotential classifies the harm potential of text from keyword
// groups. This is a safety net, not a precision classifier: it returns high
// on death/safety/crime signals and medium otherwise, never low.
func (c *Classifier) DetectHarmPotential(text string) model.HarmPotential {
	if c.reg.MatchesAny(text, patterns.GroupHarmDeath) ||
		c.reg.MatchesAny(text, patterns.GroupHarmSafety) ||
		c.reg.MatchesAny(text, patterns.GroupHarmCrime) {
		return model.HarmHigh
	}
	return model.HarmMedium
}
