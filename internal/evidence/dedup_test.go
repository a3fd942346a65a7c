package evidence

import (
	"context"
	"errors"
	"testing"

	"github.com/ppiankov/veridex/internal/model"
)

func TestJaccard_IdenticalAndDisjoint(t *testing.T) {
	if got := Jaccard("alpha bravo charlie delta", "alpha bravo charlie delta"); got != 1.0 {
		t.Errorf("Expected 1.0 for identical statements, got %f", got)
	}
	if got := Jaccard("alpha bravo charlie", "delta echo foxtrot"); got != 0.0 {
		t.Errorf("Expected 0.0 for disjoint statements, got %f", got)
	}
}

func TestJaccard_ShortWordsIgnored(t *testing.T) {
	// Only words of 4+ chars count; "the", "was", "it" drop out
	if got := Jaccard("it was the economy", "the economy was it"); got != 1.0 {
		t.Errorf("Expected 1.0 over the surviving word set, got %f", got)
	}
}

func TestDeduper_ExactMatchWinsWithoutSimilarity(t *testing.T) {
	d := NewDeduper(0.75, nil)
	ctx := context.Background()

	first := model.EvidenceItem{ID: "a", Statement: "The dam failed during the 1975 typhoon season"}
	second := model.EvidenceItem{ID: "b", Statement: "the dam failed during the 1975 typhoon season"}

	if check := d.IsDuplicate(ctx, first); check.Duplicate {
		t.Fatal("First item must not be a duplicate")
	}
	check := d.IsDuplicate(ctx, second)
	if !check.Duplicate || check.Method != "exact" || check.MatchedID != "a" {
		t.Fatalf("Expected exact duplicate of a, got %+v", check)
	}
}

func TestDeduper_NoSimilarityFunctionIsExplicit(t *testing.T) {
	d := NewDeduper(0.75, nil)
	ctx := context.Background()

	d.IsDuplicate(ctx, model.EvidenceItem{ID: "a", Statement: "The dam failed during the typhoon"})
	check := d.IsDuplicate(ctx, model.EvidenceItem{ID: "b", Statement: "The dam collapsed amid the typhoon"})

	if check.Duplicate {
		t.Fatal("Without a similarity function, near-duplicates must not be guessed")
	}
	if check.SemanticChecked {
		t.Error("Expected SemanticChecked=false when no similarity function is configured")
	}
	if check.Note == "" {
		t.Error("Expected an explicit note that the semantic tier is unavailable")
	}
}

func TestDeduper_SemanticMatch(t *testing.T) {
	sim := func(ctx context.Context, pairs []SimilarityPair) (map[string]float64, error) {
		scores := make(map[string]float64)
		for _, p := range pairs {
			scores[p.ID] = 0.9
		}
		return scores, nil
	}
	d := NewDeduper(0.75, sim)
	ctx := context.Background()

	d.IsDuplicate(ctx, model.EvidenceItem{ID: "a", Statement: "The dam failed during the typhoon"})
	check := d.IsDuplicate(ctx, model.EvidenceItem{ID: "b", Statement: "The dam collapsed amid the storm"})

	if !check.Duplicate || check.Method != "semantic" || check.MatchedID != "a" {
		t.Fatalf("Expected semantic duplicate of a, got %+v", check)
	}
}

func TestDeduper_SimilarityFailureDegrades(t *testing.T) {
	sim := func(ctx context.Context, pairs []SimilarityPair) (map[string]float64, error) {
		return nil, errors.New("timeout")
	}
	d := NewDeduper(0.75, sim)
	ctx := context.Background()

	d.IsDuplicate(ctx, model.EvidenceItem{ID: "a", Statement: "The dam failed during the typhoon"})
	check := d.IsDuplicate(ctx, model.EvidenceItem{ID: "b", Statement: "The dam collapsed amid the storm"})

	if check.Duplicate {
		t.Fatal("A similarity failure must degrade to not-duplicate")
	}
	if check.SemanticChecked {
		t.Error("Expected SemanticChecked=false after a failed similarity call")
	}
	if check.Note == "" {
		t.Error("Expected the failure to be surfaced in the note")
	}
}
