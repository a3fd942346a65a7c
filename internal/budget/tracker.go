package budget

import (
	"fmt"

	"github.com/ppiankov/veridex/internal/model"
)

// Decision is the outcome of a budget check. The tracker never panics or
// errors on budget conditions; the orchestrator decides what to do with a
// rejection. Hard reports whether the rejection is binding: with soft
// enforcement the orchestrator may proceed but must log the reason.
type Decision struct {
	Allowed bool
	Hard    bool
	Reason  string
}

// Tracker counts research iterations and token spend for one analysis run.
//
// A tracker is exclusively owned by one run and is not safe for concurrent
// use: create one per run and pass it through the run's call chain.
// Counters are monotonically non-decreasing.
type Tracker struct {
	limits model.ResearchBudget

	tokensUsed        int
	totalIterations   int
	llmCalls          int
	iterationsByScope map[string]int
	exceeded          bool
	exceedReason      string
}

// NewTracker creates a tracker for one analysis run.
func NewTracker(limits model.ResearchBudget) *Tracker {
	return &Tracker{
		limits:            limits,
		iterationsByScope: make(map[string]int),
	}
}

// CheckIteration reports whether the scope may run another research
// iteration: both the per-scope and the total iteration caps must hold.
func (t *Tracker) CheckIteration(scope string) Decision {
	if t.limits.MaxIterationsPerScope > 0 && t.iterationsByScope[scope] >= t.limits.MaxIterationsPerScope {
		return t.reject(fmt.Sprintf("scope %q reached %d/%d iterations", scope, t.iterationsByScope[scope], t.limits.MaxIterationsPerScope))
	}
	if t.limits.MaxTotalIterations > 0 && t.totalIterations >= t.limits.MaxTotalIterations {
		return t.reject(fmt.Sprintf("total iterations reached %d/%d", t.totalIterations, t.limits.MaxTotalIterations))
	}
	return Decision{Allowed: true}
}

// CheckTokens reports whether adding tokens stays inside the budget. A
// single addition larger than the per-call cap is rejected regardless of
// the cumulative budget, catching runaway calls early.
func (t *Tracker) CheckTokens(tokensToAdd int) Decision {
	if t.limits.MaxTokensPerCall > 0 && tokensToAdd > t.limits.MaxTokensPerCall {
		return t.reject(fmt.Sprintf("single call of %d tokens exceeds per-call cap %d", tokensToAdd, t.limits.MaxTokensPerCall))
	}
	if t.limits.MaxTotalTokens > 0 && t.tokensUsed+tokensToAdd > t.limits.MaxTotalTokens {
		return t.reject(fmt.Sprintf("adding %d tokens would exceed total budget %d (used %d)", tokensToAdd, t.limits.MaxTotalTokens, t.tokensUsed))
	}
	return Decision{Allowed: true}
}

// reject builds a rejection decision honoring the enforcement mode. With
// soft enforcement the rejection is advisory: Allowed stays false but Hard
// tells the caller it may proceed after logging.
func (t *Tracker) reject(reason string) Decision {
	return Decision{Allowed: false, Hard: t.limits.EnforceHard, Reason: reason}
}

// RecordIteration counts one research iteration against the scope.
func (t *Tracker) RecordIteration(scope string) {
	t.iterationsByScope[scope]++
	t.totalIterations++
}

// RecordTokens counts consumed tokens.
func (t *Tracker) RecordTokens(n int) {
	t.tokensUsed += n
}

// RecordLLMCall counts one LLM call and its token spend.
func (t *Tracker) RecordLLMCall(tokens int) {
	t.llmCalls++
	t.tokensUsed += tokens
}

// MarkExceeded records that the orchestrator stopped the run over budget.
// The first reason wins.
func (t *Tracker) MarkExceeded(reason string) {
	if t.exceeded {
		return
	}
	t.exceeded = true
	t.exceedReason = reason
}

// Usage returns a read-only snapshot of the counters.
func (t *Tracker) Usage() model.BudgetUsage {
	byScope := make(map[string]int, len(t.iterationsByScope))
	for scope, n := range t.iterationsByScope {
		byScope[scope] = n
	}
	return model.BudgetUsage{
		TokensUsed:        t.tokensUsed,
		TotalIterations:   t.totalIterations,
		LLMCalls:          t.llmCalls,
		IterationsByScope: byScope,
		BudgetExceeded:    t.exceeded,
		ExceedReason:      t.exceedReason,
	}
}
