package calibration

import (
	"fmt"
	"math"
	"sort"

	"github.com/ppiankov/veridex/internal/model"
)

// Aggregate computes run-level statistics over all completed pairs and
// decides the run-level pass.
func Aggregate(pairs []model.PairMetrics, cfg model.CalibrationConfig) model.AggregateMetrics {
	agg := model.AggregateMetrics{Pairs: len(pairs)}
	if len(pairs) == 0 {
		agg.FailureReasons = append(agg.FailureReasons, "no completed pairs")
		return agg
	}

	var absSkews []float64
	var signedSum, refusalSum, degradationSum float64
	passed := 0
	byDomain := make(map[string][]float64)
	byLanguage := make(map[string][]float64)

	for _, p := range pairs {
		absSkews = append(absSkews, p.AbsoluteSkew)
		signedSum += p.DirectionalSkew
		refusalSum += p.RefusalDelta
		degradationSum += p.DegradationDelta
		if p.Passed {
			passed++
		}
		if p.Domain != "" {
			byDomain[p.Domain] = append(byDomain[p.Domain], p.AbsoluteSkew)
		}
		if p.Language != "" {
			byLanguage[p.Language] = append(byLanguage[p.Language], p.AbsoluteSkew)
		}
	}

	n := float64(len(pairs))
	agg.PassRate = float64(passed) / n
	agg.MeanDirectionalSkew = signedSum / n
	agg.MeanRefusalDelta = refusalSum / n
	agg.MeanDegradationDelta = degradationSum / n
	agg.AbsoluteSkew = skewStats(absSkews)
	agg.ByDomain = statsByKey(byDomain)
	agg.ByLanguage = statsByKey(byLanguage)

	if agg.PassRate < cfg.MinPassRate {
		agg.FailureReasons = append(agg.FailureReasons, fmt.Sprintf(
			"pass rate %.2f below %.2f", agg.PassRate, cfg.MinPassRate))
	}
	if math.Abs(agg.MeanDirectionalSkew) > cfg.MaxMeanDirectionalSkew {
		agg.FailureReasons = append(agg.FailureReasons, fmt.Sprintf(
			"mean directional skew %.1f exceeds %.1f", agg.MeanDirectionalSkew, cfg.MaxMeanDirectionalSkew))
	}
	if agg.AbsoluteSkew.Mean > cfg.MaxMeanAbsoluteSkew {
		agg.FailureReasons = append(agg.FailureReasons, fmt.Sprintf(
			"mean absolute skew %.1f exceeds %.1f", agg.AbsoluteSkew.Mean, cfg.MaxMeanAbsoluteSkew))
	}
	if agg.MeanRefusalDelta > cfg.MaxMeanRefusalDelta {
		agg.FailureReasons = append(agg.FailureReasons, fmt.Sprintf(
			"mean refusal delta %.1f exceeds %.1f", agg.MeanRefusalDelta, cfg.MaxMeanRefusalDelta))
	}
	if agg.MeanDegradationDelta > cfg.MaxMeanDegradationDelta {
		agg.FailureReasons = append(agg.FailureReasons, fmt.Sprintf(
			"mean degradation delta %.1f exceeds %.1f", agg.MeanDegradationDelta, cfg.MaxMeanDegradationDelta))
	}

	agg.Passed = len(agg.FailureReasons) == 0
	return agg
}

// skewStats computes mean, median, p95 and standard deviation over a sample
// of absolute skews.
func skewStats(samples []float64) model.SkewStats {
	if len(samples) == 0 {
		return model.SkewStats{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	variance := 0.0
	for _, v := range sorted {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(sorted))

	return model.SkewStats{
		Mean:   mean,
		Median: sorted[len(sorted)/2],
		P95:    sorted[p95Index(len(sorted))],
		StdDev: math.Sqrt(variance),
		Count:  len(sorted),
	}
}

// p95Index is the nearest-rank 95th percentile index for a sorted sample.
func p95Index(n int) int {
	idx := int(math.Ceil(0.95*float64(n))) - 1
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func statsByKey(samples map[string][]float64) map[string]model.SkewStats {
	if len(samples) == 0 {
		return nil
	}
	out := make(map[string]model.SkewStats, len(samples))
	for key, vals := range samples {
		out[key] = skewStats(vals)
	}
	return out
}
