package generator

import (
	"context"
	"strings"

	"todo-summary-assistant/internal/model"
	"todo-summary-assistant/pkg/llmprovider"
	"todo-summary-assistant/pkg/log"
)

// Sampling parameters for summary generation.
const (
	maxNewTokens      = 256
	temperature       = 0.7
	topP              = 0.95
	repetitionPenalty = 1.2
)

// ContentGenerator is satisfied by *llmprovider.Manager.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLM asks a language model for the summary and degrades to fallback
// whenever the model fails or returns nothing.
type LLM struct {
	l        log.Logger
	llm      ContentGenerator
	fallback Generator
}

// NewLLM creates an LLM-backed generator.
func NewLLM(l log.Logger, llm ContentGenerator, fallback Generator) *LLM {
	return &LLM{l: l, llm: llm, fallback: fallback}
}

// Generate implements Generator.
func (g *LLM) Generate(ctx context.Context, todos []model.Task) (Summary, error) {
	tasks := pending(todos)
	if len(tasks) == 0 {
		return Summary{Text: NoPendingMessage, Source: SourceFallback}, nil
	}

	req := llmprovider.NewTextRequest(BuildPrompt(tasks))
	req.MaxTokens = maxNewTokens
	req.Temperature = temperature
	req.TopP = topP
	req.RepetitionPenalty = repetitionPenalty

	resp, err := g.llm.GenerateContent(ctx, req)
	if err != nil {
		g.l.Warnf(ctx, "generator.LLM.Generate: falling back to local summary: %v", err)
		return g.fallback.Generate(ctx, todos)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.l.Warnf(ctx, "generator.LLM.Generate: provider %s returned empty text, falling back", resp.ProviderName)
		return g.fallback.Generate(ctx, todos)
	}

	return Summary{Text: text, Source: "llm:" + resp.ProviderName}, nil
}
