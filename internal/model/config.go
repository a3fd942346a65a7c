package model

// Config is the complete veridex configuration
type Config struct {
	Filter      FilterConfig        `json:"filter" yaml:"filter" mapstructure:"filter"`
	Budget      ResearchBudget      `json:"budget" yaml:"budget" mapstructure:"budget"`
	Calibration CalibrationConfig   `json:"calibration" yaml:"calibration" mapstructure:"calibration"`
	LLM         LLMConfig           `json:"llm" yaml:"llm" mapstructure:"llm"`
	Patterns    map[string][]string `json:"patterns,omitempty" yaml:"patterns,omitempty" mapstructure:"patterns"` // Overrides built-in pattern groups when non-empty
}

// FilterConfig controls the evidence probative filter and deduplicator
type FilterConfig struct {
	MinStatementLength     int     `json:"min_statement_length" yaml:"min_statement_length" mapstructure:"min_statement_length"`
	MaxVaguePhraseCount    int     `json:"max_vague_phrase_count" yaml:"max_vague_phrase_count" mapstructure:"max_vague_phrase_count"`
	MinExcerptLength       int     `json:"min_excerpt_length" yaml:"min_excerpt_length" mapstructure:"min_excerpt_length"`
	MinStatisticExcerpt    int     `json:"min_statistic_excerpt" yaml:"min_statistic_excerpt" mapstructure:"min_statistic_excerpt"`
	RequireExcerpt         bool    `json:"require_excerpt" yaml:"require_excerpt" mapstructure:"require_excerpt"`
	RequireSourceURL       bool    `json:"require_source_url" yaml:"require_source_url" mapstructure:"require_source_url"`
	DeduplicationThreshold float64 `json:"deduplication_threshold" yaml:"deduplication_threshold" mapstructure:"deduplication_threshold"`
}

// CalibrationConfig holds the pair- and run-level thresholds for bias calibration
type CalibrationConfig struct {
	MaxPairSkew             float64 `json:"max_pair_skew" yaml:"max_pair_skew" mapstructure:"max_pair_skew"`
	MaxRefusalDelta         float64 `json:"max_refusal_delta" yaml:"max_refusal_delta" mapstructure:"max_refusal_delta"`
	MaxDegradationDelta     float64 `json:"max_degradation_delta" yaml:"max_degradation_delta" mapstructure:"max_degradation_delta"`
	MinPassRate             float64 `json:"min_pass_rate" yaml:"min_pass_rate" mapstructure:"min_pass_rate"`
	MaxMeanDirectionalSkew  float64 `json:"max_mean_directional_skew" yaml:"max_mean_directional_skew" mapstructure:"max_mean_directional_skew"`
	MaxMeanAbsoluteSkew     float64 `json:"max_mean_absolute_skew" yaml:"max_mean_absolute_skew" mapstructure:"max_mean_absolute_skew"`
	MaxMeanRefusalDelta     float64 `json:"max_mean_refusal_delta" yaml:"max_mean_refusal_delta" mapstructure:"max_mean_refusal_delta"`
	MaxMeanDegradationDelta float64 `json:"max_mean_degradation_delta" yaml:"max_mean_degradation_delta" mapstructure:"max_mean_degradation_delta"`
}

// LLMConfig configures the optional semantic similarity provider
type LLMConfig struct {
	Provider          string  `json:"provider" yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model             string  `json:"model" yaml:"model" mapstructure:"model"`
	APIKey            string  `json:"-" yaml:"-" mapstructure:"api_key"`
	BaseURL           string  `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`
	TimeoutSeconds    int     `json:"timeout_seconds" yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `json:"burst" yaml:"burst" mapstructure:"burst"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Filter: FilterConfig{
			MinStatementLength:     20,
			MaxVaguePhraseCount:    2,
			MinExcerptLength:       30,
			MinStatisticExcerpt:    40,
			RequireExcerpt:         true,
			RequireSourceURL:       true,
			DeduplicationThreshold: 0.75,
		},
		Budget: ResearchBudget{
			MaxIterationsPerScope: 3,
			MaxTotalIterations:    12,
			MaxTotalTokens:        200000,
			MaxTokensPerCall:      32000,
			EnforceHard:           true,
		},
		Calibration: CalibrationConfig{
			MaxPairSkew:             15,
			MaxRefusalDelta:         10,
			MaxDegradationDelta:     10,
			MinPassRate:             0.8,
			MaxMeanDirectionalSkew:  5,
			MaxMeanAbsoluteSkew:     10,
			MaxMeanRefusalDelta:     5,
			MaxMeanDegradationDelta: 5,
		},
		LLM: LLMConfig{
			Provider:          "", // Semantic dedup disabled by default
			Model:             "gpt-4o-mini",
			TimeoutSeconds:    30,
			RequestsPerSecond: 2,
			Burst:             4,
		},
	}
}
