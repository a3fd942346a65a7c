package pseudo

import (
	"fmt"
	"math"
)

// Strength bands over the truth percentage. Escalation reasons about
// verdicts in bands rather than raw percentages so escalated truth and
// confidence always land on internally consistent pairs.
const (
	bandRefuted = iota
	bandUncertain
	bandPartial
	bandStrong
)

var bandNames = [...]string{"refuted", "uncertain", "partial", "strong"}

// Band boundaries on the truth percentage.
var bandLow = [...]float64{0, 35, 50, 72}
var bandHigh = [...]float64{35, 50, 72, 100}

// strengthBand maps a truth percentage to its band.
func strengthBand(truth int) int {
	switch {
	case truth >= 72:
		return bandStrong
	case truth >= 50:
		return bandPartial
	case truth >= 35:
		return bandUncertain
	default:
		return bandRefuted
	}
}

// truthFromBand maps a target band and a normalized detector confidence
// (0-1) to a truth percentage inside the band: the more confident the
// detector, the closer to the band floor.
func truthFromBand(band int, norm float64) int {
	lo, hi := bandLow[band], bandHigh[band]
	return int(math.Round(hi - norm*(hi-lo)))
}

// Escalation is the outcome of applying a pseudoscience detection to a
// verdict. When Applied is false the verdict stands unchanged and Reason
// says why.
type Escalation struct {
	Applied     bool   `json:"applied"`
	Truth       int    `json:"truth,omitempty"`
	Confidence  int    `json:"confidence,omitempty"`
	Band        string `json:"band,omitempty"`
	Severity    string `json:"severity,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Reason      string `json:"reason,omitempty"` // Why escalation did not fire
}

// Escalate decides whether a pseudoscience detection overrides the current
// verdict. It fires only when the verdict is not already near-refuted
// (strength band partial or above) and the detector is at least 0.5
// confident, with three graded severities keyed to the number of
// corroborating debunk indicators.
func Escalate(truth, confidence int, det Detection) Escalation {
	if !det.IsPseudoscience {
		return Escalation{Reason: "no pseudoscience detected"}
	}
	if det.Confidence < 0.5 {
		return Escalation{Reason: fmt.Sprintf("detector confidence %.2f below 0.5", det.Confidence)}
	}

	current := strengthBand(truth)
	if current < bandPartial {
		return Escalation{Reason: fmt.Sprintf("verdict already %s, nothing to escalate", bandNames[current])}
	}

	var target int
	var severity string
	switch {
	case len(det.DebunkIndicators) >= 2:
		target = bandRefuted
		severity = "high"
	case len(det.DebunkIndicators) >= 1:
		target = bandUncertain
		severity = "medium"
	default:
		target = current - 1
		severity = "low"
	}

	norm := (det.Confidence - 0.5) / 0.5
	if norm > 1 {
		norm = 1
	}

	newTruth := truthFromBand(target, norm)
	return Escalation{
		Applied:    true,
		Truth:      newTruth,
		Confidence: int(math.Round(det.Confidence * 100)),
		Band:       bandNames[target],
		Severity:   severity,
		Explanation: fmt.Sprintf(
			"claim matches %d pseudoscience pattern(s) in %d categor%s with %d debunk indicator(s); verdict moved from %s (%d%% at %d%% confidence) to %s (%d%%)",
			len(det.MatchedPatterns), len(det.Categories), plural(len(det.Categories), "y", "ies"),
			len(det.DebunkIndicators), bandNames[current], truth, confidence, bandNames[target], newTruth),
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
