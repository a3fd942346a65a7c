package model

// ResearchBudget caps research iterations and token spend for one analysis run
type ResearchBudget struct {
	MaxIterationsPerScope int  `json:"max_iterations_per_scope" yaml:"max_iterations_per_scope" mapstructure:"max_iterations_per_scope"`
	MaxTotalIterations    int  `json:"max_total_iterations" yaml:"max_total_iterations" mapstructure:"max_total_iterations"`
	MaxTotalTokens        int  `json:"max_total_tokens" yaml:"max_total_tokens" mapstructure:"max_total_tokens"`
	MaxTokensPerCall      int  `json:"max_tokens_per_call" yaml:"max_tokens_per_call" mapstructure:"max_tokens_per_call"`
	EnforceHard           bool `json:"enforce_hard" yaml:"enforce_hard" mapstructure:"enforce_hard"`
}

// BudgetUsage is a read-only snapshot of a tracker's counters
type BudgetUsage struct {
	TokensUsed        int            `json:"tokens_used"`
	TotalIterations   int            `json:"total_iterations"`
	LLMCalls          int            `json:"llm_calls"`
	IterationsByScope map[string]int `json:"iterations_by_scope,omitempty"`
	BudgetExceeded    bool           `json:"budget_exceeded"`
	ExceedReason      string         `json:"exceed_reason,omitempty"`
}
