package calibration

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/veridex/internal/model"
)

func TestClassifyWarnings(t *testing.T) {
	warnings := []model.Warning{
		{Type: "refusal", Reason: "model declined the request"},
		{Type: "content_policy", Reason: ""},
		{Type: "note", Reason: "The provider refused to answer"},            // substring: refus
		{Type: "truncation", Reason: "output cut short"},                    // type: degradation
		{Type: "warning", Reason: "response was truncated mid-sentence"},    // substring: truncat
		{Type: "info", Reason: "cache hit on second retrieval"},             // neither bucket
	}

	got := ClassifyWarnings(warnings)
	want := WarningCounts{Refusals: 3, Degradations: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClassifyWarnings mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyWarnings_TypeTagBeatsSubstring(t *testing.T) {
	// Type says refusal even though the reason mentions truncation
	got := ClassifyWarnings([]model.Warning{{Type: "refusal", Reason: "output truncated after refusal"}})
	if got.Refusals != 1 || got.Degradations != 0 {
		t.Errorf("Type tag must win, got %+v", got)
	}
}

func TestClassifyWarnings_Empty(t *testing.T) {
	got := ClassifyWarnings(nil)
	if got.Refusals != 0 || got.Degradations != 0 {
		t.Errorf("Expected zero counts, got %+v", got)
	}
}
