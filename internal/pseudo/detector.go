package pseudo

import (
	"sort"
	"strings"

	"github.com/ppiankov/veridex/internal/patterns"
)

// Detection is the result of scanning text for known crank-science patterns
type Detection struct {
	IsPseudoscience  bool     `json:"is_pseudoscience"`
	Confidence       float64  `json:"confidence"` // 0-1
	Categories       []string `json:"categories,omitempty"`
	MatchedPatterns  []string `json:"matched_patterns,omitempty"`
	DebunkIndicators []string `json:"debunk_indicators,omitempty"`
}

// Detector matches text against pseudoscience category groups and debunk
// indicators from the pattern registry.
type Detector struct {
	reg *patterns.Registry
}

// NewDetector creates a detector. A nil registry falls back to the defaults.
func NewDetector(reg *patterns.Registry) *Detector {
	if reg == nil {
		reg = patterns.NewRegistry(nil)
	}
	return &Detector{reg: reg}
}

// Detect scans text against every pseudoscience category group. Confidence
// combines pattern matches, distinct categories and corroborating debunk
// indicators, each contribution capped so no single signal dominates.
func (d *Detector) Detect(text string) Detection {
	det := Detection{}

	groups := d.reg.Groups(patterns.PseudoPrefix)
	sort.Strings(groups)

	for _, group := range groups {
		matched := d.reg.FindMatches(text, group)
		if len(matched) == 0 {
			continue
		}
		det.Categories = append(det.Categories, strings.TrimPrefix(group, patterns.PseudoPrefix))
		det.MatchedPatterns = append(det.MatchedPatterns, matched...)
	}

	det.DebunkIndicators = d.reg.FindMatches(text, patterns.GroupDebunkIndicators)

	det.Confidence = capped(0.15*float64(len(det.MatchedPatterns)), 0.6) +
		capped(0.2*float64(len(det.Categories)), 0.4) +
		capped(0.2*float64(len(det.DebunkIndicators)), 0.4)
	if det.Confidence > 1 {
		det.Confidence = 1
	}

	det.IsPseudoscience = len(det.Categories) >= 1 && det.Confidence >= 0.3
	return det
}

func capped(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
