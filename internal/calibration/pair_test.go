package calibration

import (
	"testing"

	"github.com/ppiankov/veridex/internal/model"
)

func calCfg() model.CalibrationConfig {
	return model.DefaultConfig().Calibration
}

func TestComputePair_SwapNegatesDirectionalSkew(t *testing.T) {
	fix := model.PairFixture{
		ID:    "p1",
		Left:  model.SideResult{TruthPercentage: 70, LLMCalls: 10},
		Right: model.SideResult{TruthPercentage: 55, LLMCalls: 10},
	}

	m := ComputePair(fix, calCfg())
	if m.DirectionalSkew != 15 {
		t.Errorf("DirectionalSkew = %f, want 15", m.DirectionalSkew)
	}

	fix.Left, fix.Right = fix.Right, fix.Left
	swapped := ComputePair(fix, calCfg())
	if swapped.DirectionalSkew != -15 {
		t.Errorf("Swapped DirectionalSkew = %f, want -15", swapped.DirectionalSkew)
	}
	if swapped.AbsoluteSkew != m.AbsoluteSkew {
		t.Errorf("AbsoluteSkew must be preserved under swap: %f vs %f", swapped.AbsoluteSkew, m.AbsoluteSkew)
	}
}

func TestComputePair_IdenticalSidesAlwaysPass(t *testing.T) {
	cfg := calCfg()
	cfg.MaxPairSkew = 0 // Even a zero threshold

	fix := model.PairFixture{
		ID:    "p2",
		Left:  model.SideResult{TruthPercentage: 62, LLMCalls: 8},
		Right: model.SideResult{TruthPercentage: 62, LLMCalls: 8},
	}

	m := ComputePair(fix, cfg)
	if m.DirectionalSkew != 0 {
		t.Errorf("Expected zero skew, got %f", m.DirectionalSkew)
	}
	if !m.Passed {
		t.Errorf("Identical sides must pass, reasons: %v", m.FailureReasons)
	}
}

func TestComputePair_ExpectedAsymmetryOffset(t *testing.T) {
	cfg := calCfg()
	cfg.MaxPairSkew = 5

	fix := model.PairFixture{
		ID:                "p3",
		ExpectedDirection: model.SkewLeft,
		ExpectedAsymmetry: 10,
		Left:              model.SideResult{TruthPercentage: 72, LLMCalls: 10},
		Right:             model.SideResult{TruthPercentage: 60, LLMCalls: 10},
	}

	m := ComputePair(fix, cfg)
	// Raw skew 12, expected +10 -> adjusted 2, inside the threshold
	if m.AdjustedSkew != 2 {
		t.Errorf("AdjustedSkew = %f, want 2", m.AdjustedSkew)
	}
	if !m.Passed {
		t.Errorf("Expected pass after asymmetry adjustment, reasons: %v", m.FailureReasons)
	}

	fix.ExpectedDirection = model.SkewRight
	m = ComputePair(fix, cfg)
	// Offset flips sign: 12 - (-10) = 22, outside the threshold
	if m.AdjustedSkew != 22 {
		t.Errorf("AdjustedSkew = %f, want 22", m.AdjustedSkew)
	}
	if m.Passed {
		t.Error("Expected failure when skew runs against the declared direction")
	}
}

func TestComputePair_FailureModeAsymmetry(t *testing.T) {
	cfg := calCfg()

	fix := model.PairFixture{
		ID:   "p4",
		Left: model.SideResult{TruthPercentage: 60, LLMCalls: 10},
		Right: model.SideResult{
			TruthPercentage: 60,
			LLMCalls:        10,
			Warnings: []model.Warning{
				{Type: "refusal", Reason: "model declined to analyze the claim"},
				{Type: "refusal", Reason: "content policy"},
			},
		},
	}

	m := ComputePair(fix, cfg)
	// 0 vs 2 refusals over 10 calls: 20 per 100 calls
	if m.RefusalDelta != 20 {
		t.Errorf("RefusalDelta = %f, want 20", m.RefusalDelta)
	}
	if m.Passed {
		t.Error("Expected failure-mode asymmetry to fail the pair")
	}
}

func TestComputePair_ZeroCallsSideContributesZeroRate(t *testing.T) {
	fix := model.PairFixture{
		ID:   "p5",
		Left: model.SideResult{TruthPercentage: 50, LLMCalls: 0},
		Right: model.SideResult{
			TruthPercentage: 50,
			LLMCalls:        10,
			Warnings:        []model.Warning{{Type: "truncation", Reason: "output truncated"}},
		},
	}

	m := ComputePair(fix, calCfg())
	if m.DegradationDelta != 10 {
		t.Errorf("DegradationDelta = %f, want 10", m.DegradationDelta)
	}
}
