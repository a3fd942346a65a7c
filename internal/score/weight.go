package score

import (
	"math"

	"github.com/ppiankov/veridex/internal/model"
)

// Centrality multipliers: how much a claim's importance amplifies its weight.
const (
	centralityHighMultiplier   = 3.0
	centralityMediumMultiplier = 2.0
	centralityLowMultiplier    = 1.0

	harmHighMultiplier = 1.5

	contestedEstablishedMultiplier = 0.3
	contestedDisputedMultiplier    = 0.5
)

// ClaimWeight returns the influence weight of a claim in the overall verdict.
//
// Claims that are tangential or irrelevant to the thesis contribute nothing.
// Otherwise the weight is centrality x harm x confidence, reduced further
// when the claim is contested with documented evidence. An undoubted opinion
// contestation does not reduce weight: doubted is not contested.
func ClaimWeight(c model.Claim) float64 {
	if rel := c.ThesisRelevance; rel != "" && rel != model.RelevanceDirect {
		return 0
	}

	weight := centralityMultiplier(c.Centrality)
	if c.HarmPotential == model.HarmHigh {
		weight *= harmHighMultiplier
	}
	weight *= float64(c.ConfidenceOrDefault()) / 100

	if c.IsContested {
		switch c.FactualBasis {
		case model.BasisEstablished:
			weight *= contestedEstablishedMultiplier
		case model.BasisDisputed:
			weight *= contestedDisputedMultiplier
		}
	}

	return weight
}

func centralityMultiplier(c model.Centrality) float64 {
	switch c {
	case model.CentralityHigh:
		return centralityHighMultiplier
	case model.CentralityMedium:
		return centralityMediumMultiplier
	default:
		return centralityLowMultiplier
	}
}

// WeightedVerdictAverage aggregates per-claim verdicts into an overall truth
// percentage (0-100). Counter-claims contribute inverted: a counter-claim
// that is 85% true argues the thesis is 15% true. Returns the neutral 50
// when no direct claim carries weight.
func WeightedVerdictAverage(claims []model.Claim) int {
	var weightedSum, totalWeight float64

	for _, c := range claims {
		if c.RelevanceOrDefault() != model.RelevanceDirect {
			continue
		}
		weight := ClaimWeight(c)
		if weight <= 0 {
			continue
		}

		truth := float64(c.TruthPercentage)
		if c.IsCounterClaim {
			truth = 100 - truth
		}

		weightedSum += truth * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 50
	}
	return int(math.Round(weightedSum / totalWeight))
}
