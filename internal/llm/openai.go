package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/ppiankov/veridex/internal/evidence"
	"github.com/ppiankov/veridex/internal/model"
)

// similarityBatchSize bounds pairs per request to keep responses parseable.
const similarityBatchSize = 20

// OpenAIProvider scores statement pairs with an OpenAI chat model.
// Requests are rate-limited so large dedup batches stay within API quotas.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewOpenAIProvider creates an OpenAI-backed similarity provider.
func NewOpenAIProvider(cfg model.LLMConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai similarity provider requires an API key")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = "gpt-4o-mini"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 4
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   m,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string { return "openai" }

// Score scores pairs in bounded batches. Any batch failure fails the whole
// call: the deduper degrades a failed call to not-duplicate, so a partial
// answer would be indistinguishable from a confident one.
func (p *OpenAIProvider) Score(ctx context.Context, pairs []evidence.SimilarityPair) (map[string]float64, error) {
	scores := make(map[string]float64, len(pairs))

	for start := 0; start < len(pairs); start += similarityBatchSize {
		end := start + similarityBatchSize
		if end > len(pairs) {
			end = len(pairs)
		}

		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("similarity: %w", err)
		}

		batch, err := p.scoreBatch(ctx, pairs[start:end])
		if err != nil {
			return nil, err
		}
		for id, s := range batch {
			scores[id] = s
		}
	}

	return scores, nil
}

func (p *OpenAIProvider) scoreBatch(ctx context.Context, pairs []evidence.SimilarityPair) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: similaritySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildSimilarityPrompt(pairs)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("similarity: empty response")
	}

	return parseSimilarityResponse(resp.Choices[0].Message.Content)
}

const similaritySystemPrompt = `You rate semantic similarity between pairs of factual statements.
For each pair, output a score from 0.0 (unrelated) to 1.0 (same assertion in different words).
Respond with a JSON object mapping pair id to score and nothing else.`

// buildSimilarityPrompt renders the pairs for the model.
func buildSimilarityPrompt(pairs []evidence.SimilarityPair) string {
	var b strings.Builder
	b.WriteString("Rate these statement pairs:\n")
	for _, pair := range pairs {
		fmt.Fprintf(&b, "\n[%s]\nA: %s\nB: %s\n", pair.ID, pair.TextA, pair.TextB)
	}
	return b.String()
}

// parseSimilarityResponse extracts the id->score map, tolerating markdown
// code fences around the JSON.
func parseSimilarityResponse(content string) (map[string]float64, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var scores map[string]float64
	if err := json.Unmarshal([]byte(content), &scores); err != nil {
		return nil, fmt.Errorf("similarity: parse response: %w", err)
	}

	for id, s := range scores {
		if s < 0 {
			scores[id] = 0
		} else if s > 1 {
			scores[id] = 1
		}
	}
	return scores, nil
}
