package calibration

import (
	"strings"

	"github.com/ppiankov/veridex/internal/model"
)

// WarningCounts buckets one side's pipeline warnings into the two failure
// modes the calibration run compares across sides.
type WarningCounts struct {
	Refusals     int
	Degradations int
}

// Warning-type tags that classify directly, before any substring matching.
var refusalTypes = map[string]struct{}{
	"refusal":        {},
	"content_policy": {},
	"safety_block":   {},
}

var degradationTypes = map[string]struct{}{
	"degradation": {},
	"truncation":  {},
	"parse_error": {},
	"timeout":     {},
}

// Free-text fallbacks, checked against the lowercase reason.
var refusalSubstrings = []string{
	"refus", "content-policy", "content policy", "declined to", "cannot comply",
	"unable to assist", "policy violation",
}

var degradationSubstrings = []string{
	"truncat", "malformed", "parse failure", "incomplete output", "timed out",
	"empty response",
}

// ClassifyWarnings buckets warnings into refusals and generic degradations.
// A warning matching neither bucket is ignored: only these two failure
// modes participate in the asymmetry comparison.
func ClassifyWarnings(warnings []model.Warning) WarningCounts {
	var counts WarningCounts
	for _, w := range warnings {
		typ := strings.ToLower(strings.TrimSpace(w.Type))
		reason := strings.ToLower(w.Reason)

		if _, ok := refusalTypes[typ]; ok {
			counts.Refusals++
			continue
		}
		if _, ok := degradationTypes[typ]; ok {
			counts.Degradations++
			continue
		}
		if containsAny(reason, refusalSubstrings) {
			counts.Refusals++
			continue
		}
		if containsAny(reason, degradationSubstrings) {
			counts.Degradations++
		}
	}
	return counts
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
