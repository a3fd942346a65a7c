package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/veridex/internal/evidence"
	"github.com/ppiankov/veridex/internal/model"
)

// SimilarityProvider scores evidence-statement pairs for semantic
// similarity. It backs the optional semantic tier of near-duplicate
// detection; the primary filter never depends on it.
type SimilarityProvider interface {
	// Name returns the provider name
	Name() string

	// Score returns a 0-1 similarity per pair ID. Missing IDs are treated
	// as score 0 by callers.
	Score(ctx context.Context, pairs []evidence.SimilarityPair) (map[string]float64, error)
}

// NewFromConfig builds a similarity provider from configuration. An empty
// provider name disables the semantic tier: the caller gets nil and must
// report that semantic dedup is unavailable rather than approximate it.
func NewFromConfig(cfg model.LLMConfig) (SimilarityProvider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown similarity provider %q", cfg.Provider)
	}
}

// Func adapts a provider to the evidence.SimilarityFunc injection point.
// A nil provider yields a nil func, which the deduper reports explicitly.
func Func(p SimilarityProvider) evidence.SimilarityFunc {
	if p == nil {
		return nil
	}
	return p.Score
}
