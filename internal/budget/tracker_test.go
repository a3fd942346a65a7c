package budget

import (
	"testing"

	"github.com/ppiankov/veridex/internal/model"
)

func limits() model.ResearchBudget {
	return model.ResearchBudget{
		MaxIterationsPerScope: 2,
		MaxTotalIterations:    5,
		MaxTotalTokens:        1000,
		MaxTokensPerCall:      400,
		EnforceHard:           true,
	}
}

func TestTracker_IterationCaps(t *testing.T) {
	tr := NewTracker(limits())

	for i := 0; i < 2; i++ {
		if d := tr.CheckIteration("economy"); !d.Allowed {
			t.Fatalf("Iteration %d should be allowed: %s", i, d.Reason)
		}
		tr.RecordIteration("economy")
	}

	d := tr.CheckIteration("economy")
	if d.Allowed {
		t.Error("Expected per-scope cap to reject the third iteration")
	}
	if !d.Hard {
		t.Error("Expected a hard rejection under hard enforcement")
	}
	if d.Reason == "" {
		t.Error("Expected a reason on rejection")
	}

	// A fresh scope is still allowed until the total cap hits
	if d := tr.CheckIteration("health"); !d.Allowed {
		t.Errorf("Fresh scope should be allowed: %s", d.Reason)
	}
}

func TestTracker_TotalIterationCap(t *testing.T) {
	tr := NewTracker(limits())

	scopes := []string{"a", "a", "b", "b", "c"}
	for _, s := range scopes {
		tr.RecordIteration(s)
	}

	if d := tr.CheckIteration("d"); d.Allowed {
		t.Error("Expected total iteration cap to reject even a fresh scope")
	}
}

func TestTracker_CountersSumInvariant(t *testing.T) {
	tr := NewTracker(limits())

	scopes := []string{"a", "b", "a", "c", "b", "a"}
	for _, s := range scopes {
		tr.RecordIteration(s)
	}

	usage := tr.Usage()
	if usage.TotalIterations != len(scopes) {
		t.Errorf("TotalIterations = %d, want %d", usage.TotalIterations, len(scopes))
	}
	sum := 0
	for _, n := range usage.IterationsByScope {
		sum += n
	}
	if sum != usage.TotalIterations {
		t.Errorf("Per-scope sum %d != total %d", sum, usage.TotalIterations)
	}
}

func TestTracker_TokenBudget(t *testing.T) {
	tr := NewTracker(limits())

	if d := tr.CheckTokens(300); !d.Allowed {
		t.Fatalf("300 tokens should fit: %s", d.Reason)
	}
	tr.RecordTokens(300)

	// Per-call cap rejects a single runaway call even though 500 would fit
	if d := tr.CheckTokens(500); d.Allowed {
		t.Error("Expected per-call cap to reject a 500-token call")
	}

	tr.RecordTokens(600)
	if d := tr.CheckTokens(200); d.Allowed {
		t.Error("Expected total budget to reject an addition past 1000")
	}
	if d := tr.CheckTokens(100); !d.Allowed {
		t.Errorf("Exactly reaching the budget should be allowed: %s", d.Reason)
	}
}

func TestTracker_SoftEnforcementIsAdvisory(t *testing.T) {
	soft := limits()
	soft.EnforceHard = false
	tr := NewTracker(soft)

	tr.RecordIteration("a")
	tr.RecordIteration("a")

	d := tr.CheckIteration("a")
	if d.Allowed {
		t.Error("Soft enforcement still reports the rejection")
	}
	if d.Hard {
		t.Error("Soft enforcement must not be binding")
	}
	if d.Reason == "" {
		t.Error("Advisory rejection must carry a reason for logging")
	}
}

func TestTracker_LLMCallAndExceed(t *testing.T) {
	tr := NewTracker(limits())

	tr.RecordLLMCall(150)
	tr.RecordLLMCall(250)

	usage := tr.Usage()
	if usage.LLMCalls != 2 {
		t.Errorf("LLMCalls = %d, want 2", usage.LLMCalls)
	}
	if usage.TokensUsed != 400 {
		t.Errorf("TokensUsed = %d, want 400", usage.TokensUsed)
	}

	tr.MarkExceeded("token budget exhausted")
	tr.MarkExceeded("later reason must not overwrite")

	usage = tr.Usage()
	if !usage.BudgetExceeded || usage.ExceedReason != "token budget exhausted" {
		t.Errorf("Expected first exceed reason retained, got %+v", usage)
	}
}
