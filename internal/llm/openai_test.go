package llm

import (
	"strings"
	"testing"

	"github.com/ppiankov/veridex/internal/evidence"
	"github.com/ppiankov/veridex/internal/model"
)

func TestParseSimilarityResponse(t *testing.T) {
	scores, err := parseSimilarityResponse(`{"p1": 0.92, "p2": 0.1}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if scores["p1"] != 0.92 || scores["p2"] != 0.1 {
		t.Errorf("Unexpected scores: %v", scores)
	}
}

func TestParseSimilarityResponse_CodeFence(t *testing.T) {
	scores, err := parseSimilarityResponse("```json\n{\"p1\": 0.5}\n```")
	if err != nil {
		t.Fatalf("parse fenced: %v", err)
	}
	if scores["p1"] != 0.5 {
		t.Errorf("Unexpected scores: %v", scores)
	}
}

func TestParseSimilarityResponse_ClampsRange(t *testing.T) {
	scores, err := parseSimilarityResponse(`{"lo": -0.3, "hi": 1.7}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if scores["lo"] != 0 || scores["hi"] != 1 {
		t.Errorf("Expected clamped scores, got %v", scores)
	}
}

func TestParseSimilarityResponse_Invalid(t *testing.T) {
	if _, err := parseSimilarityResponse("I cannot rate these pairs."); err == nil {
		t.Error("Expected parse error for non-JSON output")
	}
}

func TestBuildSimilarityPrompt(t *testing.T) {
	prompt := buildSimilarityPrompt([]evidence.SimilarityPair{
		{ID: "p1", TextA: "alpha", TextB: "bravo"},
	})
	for _, want := range []string{"[p1]", "A: alpha", "B: bravo"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestNewFromConfig_DisabledIsExplicitNil(t *testing.T) {
	p, err := NewFromConfig(model.LLMConfig{Provider: ""})
	if err != nil {
		t.Fatalf("disabled provider must not error: %v", err)
	}
	if p != nil {
		t.Error("Expected nil provider when disabled")
	}
	if Func(p) != nil {
		t.Error("Expected nil similarity func for nil provider")
	}
}

func TestNewFromConfig_RequiresAPIKey(t *testing.T) {
	if _, err := NewFromConfig(model.LLMConfig{Provider: "openai"}); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestNewFromConfig_UnknownProvider(t *testing.T) {
	if _, err := NewFromConfig(model.LLMConfig{Provider: "carrier-pigeon"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
