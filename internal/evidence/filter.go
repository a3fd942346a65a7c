package evidence

import (
	"strings"

	"github.com/ppiankov/veridex/internal/model"
	"github.com/ppiankov/veridex/internal/patterns"
)

// Filter applies the probative-value rejection chain and the near-duplicate
// collapse to a batch of extracted evidence items
type Filter struct {
	reg *patterns.Registry
	cfg model.FilterConfig
}

// NewFilter creates a filter. A nil registry falls back to the default
// pattern groups.
func NewFilter(reg *patterns.Registry, cfg model.FilterConfig) *Filter {
	if reg == nil {
		reg = patterns.NewRegistry(nil)
	}
	return &Filter{reg: reg, cfg: cfg}
}

// Result partitions a filtered batch. Every rejected item carries exactly
// one machine-readable reason.
type Result struct {
	Kept     []model.EvidenceItem `json:"kept"`
	Filtered []model.FilteredItem `json:"filtered"`
	Stats    Stats                `json:"stats"`
}

// Stats summarizes one filter pass
type Stats struct {
	Input    int                          `json:"input"`
	Kept     int                          `json:"kept"`
	Rejected int                          `json:"rejected"`
	ByReason map[model.FilterReason]int   `json:"by_reason,omitempty"`
}

// Filter runs the rejection chain over items in input order, then collapses
// near-duplicates among the kept set. For a fixed input order and config the
// output is byte-identical across runs: both passes are sequential and
// first-occurrence-wins.
func (f *Filter) Filter(items []model.EvidenceItem) Result {
	res := Result{
		Kept:     []model.EvidenceItem{},
		Filtered: []model.FilteredItem{},
		Stats:    Stats{Input: len(items), ByReason: make(map[model.FilterReason]int)},
	}

	for _, item := range items {
		if reason, rejected := f.reject(item); rejected {
			res.Filtered = append(res.Filtered, model.FilteredItem{Item: item, Reason: reason})
			res.Stats.ByReason[reason]++
			continue
		}
		res.Kept = append(res.Kept, item)
	}

	res.Kept = f.collapseDuplicates(res.Kept, &res)

	res.Stats.Kept = len(res.Kept)
	res.Stats.Rejected = len(res.Filtered)
	return res
}

// reject applies the short-circuit rule chain. The first matching rule's
// reason is returned; rules are mutually exclusive by construction.
func (f *Filter) reject(item model.EvidenceItem) (model.FilterReason, bool) {
	statement := strings.TrimSpace(item.Statement)
	excerpt := strings.TrimSpace(item.SourceExcerpt)

	if item.SourceAuthority == model.AuthorityOpinion {
		return model.ReasonOpinionSource, true
	}
	if item.ProbativeValue == model.ProbativeLow {
		return model.ReasonLowProbativeValue, true
	}
	if len(statement) < f.cfg.MinStatementLength {
		return model.ReasonStatementTooShort, true
	}
	if f.reg.CountMatches(statement, patterns.GroupVaguePhrases) > f.cfg.MaxVaguePhraseCount {
		return model.ReasonTooVague, true
	}
	if f.cfg.RequireExcerpt && len(excerpt) < f.cfg.MinExcerptLength {
		return model.ReasonExcerptMissing, true
	}
	if f.cfg.RequireSourceURL && item.SourceURL == "" {
		return model.ReasonMissingSourceURL, true
	}

	switch item.Category {
	case model.CategoryStatistic:
		hasNumber := f.reg.MatchesAny(statement, patterns.GroupNumber) ||
			f.reg.MatchesAny(excerpt, patterns.GroupNumber)
		if !hasNumber || len(excerpt) < f.cfg.MinStatisticExcerpt {
			return model.ReasonStatisticNoNumber, true
		}
	case model.CategoryExpertQuote:
		if !f.reg.MatchesAny(statement, patterns.GroupAttribution) &&
			!f.reg.MatchesAny(excerpt, patterns.GroupAttribution) {
			return model.ReasonQuoteNoAttribution, true
		}
	case model.CategoryEvent:
		if !f.reg.MatchesAny(statement, patterns.GroupTemporal) &&
			!f.reg.MatchesAny(excerpt, patterns.GroupTemporal) {
			return model.ReasonEventNoDate, true
		}
	case model.CategoryLegalProvision:
		if !f.reg.MatchesAny(statement, patterns.GroupCitation) &&
			!f.reg.MatchesAny(excerpt, patterns.GroupCitation) {
			return model.ReasonLegalNoCitation, true
		}
	}

	return "", false
}

// collapseDuplicates drops items whose word-set Jaccard similarity against
// any earlier-accepted item meets the threshold. First occurrence wins.
func (f *Filter) collapseDuplicates(kept []model.EvidenceItem, res *Result) []model.EvidenceItem {
	var unique []model.EvidenceItem
	for _, item := range kept {
		dup := false
		for _, accepted := range unique {
			if Jaccard(accepted.Statement, item.Statement) >= f.cfg.DeduplicationThreshold {
				dup = true
				break
			}
		}
		if dup {
			res.Filtered = append(res.Filtered, model.FilteredItem{Item: item, Reason: model.ReasonDuplicate})
			res.Stats.ByReason[model.ReasonDuplicate]++
			continue
		}
		unique = append(unique, item)
	}
	if unique == nil {
		unique = []model.EvidenceItem{}
	}
	return unique
}
