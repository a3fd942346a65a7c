package evidence

import (
	"context"
	"strings"

	"github.com/ppiankov/veridex/internal/model"
)

// SimilarityPair is one comparison request for an external similarity function
type SimilarityPair struct {
	ID    string
	TextA string
	TextB string
}

// SimilarityFunc scores text pairs for semantic similarity (0-1 per pair ID).
// Implementations may be network-bound; the deduper treats a failure as
// "not a duplicate" rather than blocking the pass.
type SimilarityFunc func(ctx context.Context, pairs []SimilarityPair) (map[string]float64, error)

// DupCheck is the result of a streaming duplicate check.
//
// SemanticChecked is false when no similarity function is configured or the
// call failed; callers must surface that the semantic tier was unavailable
// instead of treating the item as verified-unique.
type DupCheck struct {
	Duplicate       bool
	MatchedID       string
	Method          string // "exact" or "semantic"
	SemanticChecked bool
	Note            string
}

// Deduper is a streaming near-duplicate checker for evidence items arriving
// one at a time. Exact case-insensitive statement matches always win; the
// semantic tier runs only when a similarity function is injected.
type Deduper struct {
	threshold  float64
	similarity SimilarityFunc
	seen       []model.EvidenceItem
}

// NewDeduper creates a streaming deduper. similarity may be nil, in which
// case near-duplicate detection is reported as unavailable rather than
// approximated.
func NewDeduper(threshold float64, similarity SimilarityFunc) *Deduper {
	return &Deduper{threshold: threshold, similarity: similarity}
}

// IsDuplicate checks item against everything previously accepted. Items that
// are not duplicates are recorded as seen.
func (d *Deduper) IsDuplicate(ctx context.Context, item model.EvidenceItem) DupCheck {
	norm := strings.ToLower(strings.TrimSpace(item.Statement))
	for _, prev := range d.seen {
		if strings.ToLower(strings.TrimSpace(prev.Statement)) == norm {
			return DupCheck{Duplicate: true, MatchedID: prev.ID, Method: "exact", SemanticChecked: true}
		}
	}

	if d.similarity == nil {
		d.seen = append(d.seen, item)
		return DupCheck{Note: "semantic near-duplicate detection unavailable: no similarity function configured"}
	}

	pairs := make([]SimilarityPair, 0, len(d.seen))
	byID := make(map[string]model.EvidenceItem, len(d.seen))
	for _, prev := range d.seen {
		pairs = append(pairs, SimilarityPair{ID: prev.ID, TextA: prev.Statement, TextB: item.Statement})
		byID[prev.ID] = prev
	}

	if len(pairs) > 0 {
		scores, err := d.similarity(ctx, pairs)
		if err != nil {
			// Degrade to not-duplicate, never block the pass.
			d.seen = append(d.seen, item)
			return DupCheck{Note: "similarity check failed: " + err.Error()}
		}
		for _, pair := range pairs {
			if scores[pair.ID] >= d.threshold {
				return DupCheck{Duplicate: true, MatchedID: byID[pair.ID].ID, Method: "semantic", SemanticChecked: true}
			}
		}
	}

	d.seen = append(d.seen, item)
	return DupCheck{SemanticChecked: true}
}

// Jaccard computes word-set Jaccard similarity between two statements,
// over lowercase words of at least four characters.
func Jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if len(w) >= 4 {
			set[w] = struct{}{}
		}
	}
	return set
}
