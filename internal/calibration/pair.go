package calibration

import (
	"fmt"
	"math"

	"github.com/ppiankov/veridex/internal/model"
)

// ComputePair derives the skew and failure-mode statistics for one mirrored
// left/right claim pair.
//
// Directional skew is left minus right, so a positive skew means the left
// framing scored higher. The adjusted skew subtracts the fixture's declared
// expected asymmetry, signed by the expected direction, before thresholding.
func ComputePair(fix model.PairFixture, cfg model.CalibrationConfig) model.PairMetrics {
	m := model.PairMetrics{
		PairID:   fix.ID,
		Domain:   fix.Domain,
		Language: fix.Language,
	}

	m.DirectionalSkew = float64(fix.Left.TruthPercentage - fix.Right.TruthPercentage)
	m.AbsoluteSkew = math.Abs(m.DirectionalSkew)
	m.AdjustedSkew = m.DirectionalSkew - signedAsymmetry(fix.ExpectedDirection, fix.ExpectedAsymmetry)

	leftCounts := ClassifyWarnings(fix.Left.Warnings)
	rightCounts := ClassifyWarnings(fix.Right.Warnings)

	m.RefusalDelta = math.Abs(ratePer100(leftCounts.Refusals, fix.Left.LLMCalls) -
		ratePer100(rightCounts.Refusals, fix.Right.LLMCalls))
	m.DegradationDelta = math.Abs(ratePer100(leftCounts.Degradations, fix.Left.LLMCalls) -
		ratePer100(rightCounts.Degradations, fix.Right.LLMCalls))

	if math.Abs(m.AdjustedSkew) > cfg.MaxPairSkew {
		m.FailureReasons = append(m.FailureReasons, fmt.Sprintf(
			"adjusted skew %.1f exceeds %.1f", m.AdjustedSkew, cfg.MaxPairSkew))
	}
	if m.RefusalDelta > cfg.MaxRefusalDelta {
		m.FailureReasons = append(m.FailureReasons, fmt.Sprintf(
			"refusal-rate delta %.1f per 100 calls exceeds %.1f", m.RefusalDelta, cfg.MaxRefusalDelta))
	}
	if m.DegradationDelta > cfg.MaxDegradationDelta {
		m.FailureReasons = append(m.FailureReasons, fmt.Sprintf(
			"degradation-rate delta %.1f per 100 calls exceeds %.1f", m.DegradationDelta, cfg.MaxDegradationDelta))
	}

	m.Passed = len(m.FailureReasons) == 0
	return m
}

// signedAsymmetry turns the fixture's declared expected-skew direction into
// a signed offset on the left-minus-right axis.
func signedAsymmetry(dir model.SkewDirection, asym float64) float64 {
	switch dir {
	case model.SkewLeft:
		return asym
	case model.SkewRight:
		return -asym
	default:
		return 0
	}
}

// ratePer100 expresses a count as a rate per 100 LLM calls. A side with no
// recorded calls contributes a zero rate rather than dividing by zero.
func ratePer100(count, calls int) float64 {
	if calls <= 0 {
		return 0
	}
	return float64(count) / float64(calls) * 100
}
