package calibration

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/veridex/internal/model"
)

func pairMetric(id, domain, lang string, directional float64, passed bool) model.PairMetrics {
	return model.PairMetrics{
		PairID:          id,
		Domain:          domain,
		Language:        lang,
		DirectionalSkew: directional,
		AbsoluteSkew:    math.Abs(directional),
		Passed:          passed,
	}
}

func TestAggregate_Statistics(t *testing.T) {
	pairs := []model.PairMetrics{
		pairMetric("a", "economy", "en", 4, true),
		pairMetric("b", "economy", "en", -2, true),
		pairMetric("c", "health", "de", 6, true),
		pairMetric("d", "health", "de", 0, true),
	}

	agg := Aggregate(pairs, calCfg())

	if agg.Pairs != 4 {
		t.Errorf("Pairs = %d, want 4", agg.Pairs)
	}
	if agg.PassRate != 1.0 {
		t.Errorf("PassRate = %f, want 1.0", agg.PassRate)
	}
	if agg.MeanDirectionalSkew != 2.0 { // (4-2+6+0)/4
		t.Errorf("MeanDirectionalSkew = %f, want 2.0", agg.MeanDirectionalSkew)
	}
	if agg.AbsoluteSkew.Mean != 3.0 { // (4+2+6+0)/4
		t.Errorf("AbsoluteSkew.Mean = %f, want 3.0", agg.AbsoluteSkew.Mean)
	}
	if agg.AbsoluteSkew.Median != 4.0 { // sorted [0 2 4 6], index 2
		t.Errorf("Median = %f, want 4.0", agg.AbsoluteSkew.Median)
	}
	if agg.AbsoluteSkew.P95 != 6.0 {
		t.Errorf("P95 = %f, want 6.0", agg.AbsoluteSkew.P95)
	}
	if len(agg.ByDomain) != 2 || agg.ByDomain["economy"].Count != 2 {
		t.Errorf("Expected per-domain breakdown, got %+v", agg.ByDomain)
	}
	if len(agg.ByLanguage) != 2 || agg.ByLanguage["de"].Count != 2 {
		t.Errorf("Expected per-language breakdown, got %+v", agg.ByLanguage)
	}
	if !agg.Passed {
		t.Errorf("Expected run pass, reasons: %v", agg.FailureReasons)
	}
}

func TestAggregate_RunLevelFailures(t *testing.T) {
	cfg := calCfg()
	cfg.MinPassRate = 0.9

	pairs := []model.PairMetrics{
		pairMetric("a", "", "", 30, false),
		pairMetric("b", "", "", 28, true),
	}

	agg := Aggregate(pairs, cfg)
	if agg.Passed {
		t.Fatal("Expected run-level failure")
	}
	// Pass rate 0.5, mean signed 29, mean abs 29: three distinct reasons
	if len(agg.FailureReasons) < 3 {
		t.Errorf("Expected pass-rate, directional and absolute failures, got %v", agg.FailureReasons)
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil, calCfg())
	if agg.Passed {
		t.Error("An empty run must not pass")
	}
}

func TestLoadPairs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.yaml")

	fixture := `pairs:
  - id: econ-01
    domain: economy
    language: en
    expected_direction: left
    expected_asymmetry: 5
    left:
      truth_percentage: 70
      llm_calls: 10
    right:
      truth_percentage: 64
      llm_calls: 10
      warnings:
        - type: refusal
          reason: declined to analyze
`
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	pairs, err := LoadPairs(path)
	if err != nil {
		t.Fatalf("LoadPairs: %v", err)
	}
	if len(pairs) != 1 || pairs[0].ID != "econ-01" {
		t.Fatalf("Unexpected pairs: %+v", pairs)
	}
	if pairs[0].Left.TruthPercentage != 70 || len(pairs[0].Right.Warnings) != 1 {
		t.Errorf("Fixture fields not parsed: %+v", pairs[0])
	}

	metrics, agg := Run(pairs, calCfg())
	if len(metrics) != 1 || agg.Pairs != 1 {
		t.Errorf("Run produced %d metrics, aggregate over %d", len(metrics), agg.Pairs)
	}
}

func TestLoadPairs_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.yaml")

	fixture := `pairs:
  - id: dup
    left: {truth_percentage: 50, llm_calls: 1}
    right: {truth_percentage: 50, llm_calls: 1}
  - id: dup
    left: {truth_percentage: 50, llm_calls: 1}
    right: {truth_percentage: 50, llm_calls: 1}
`
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPairs(path); err == nil {
		t.Error("Expected duplicate id error")
	}
}
