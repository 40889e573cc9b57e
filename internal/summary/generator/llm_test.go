package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"todo-summary-assistant/internal/model"
	"todo-summary-assistant/pkg/llmprovider"
	"todo-summary-assistant/pkg/log"
)

type mockContentGenerator struct {
	resp  *llmprovider.Response
	err   error
	calls int
	req   *llmprovider.Request
}

func (m *mockContentGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.req = req
	return m.resp, m.err
}

func textResp(provider, text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		ProviderName: provider,
	}
}

func TestLLM_Generate(t *testing.T) {
	todos := []model.Task{
		task(1, "Pay bills", "2020-01-01", "urgent"),
		{ID: 2, Title: "Done", Completed: true},
	}

	tests := []struct {
		name       string
		mock       *mockContentGenerator
		wantText   string
		wantSource string
	}{
		{
			name:       "model answer is trimmed",
			mock:       &mockContentGenerator{resp: textResp("huggingface", "  You have one task: pay bills.\n")},
			wantText:   "You have one task: pay bills.",
			wantSource: "llm:huggingface",
		},
		{
			name:       "upstream error falls back",
			mock:       &mockContentGenerator{err: llmprovider.ErrAllProvidersFailed},
			wantText:   "You have 1 pending task.",
			wantSource: SourceFallback,
		},
		{
			name:       "empty answer falls back",
			mock:       &mockContentGenerator{resp: textResp("gemini", "   ")},
			wantText:   "You have 1 pending task.",
			wantSource: SourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewLLM(log.NewNop(), tt.mock, newTestFallback(t, "UTC", fixedNow))

			s, err := g.Generate(context.Background(), todos)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if !strings.HasPrefix(s.Text, tt.wantText) {
				t.Errorf("text = %q, want prefix %q", s.Text, tt.wantText)
			}
			if s.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", s.Source, tt.wantSource)
			}
		})
	}
}

func TestLLM_RequestShape(t *testing.T) {
	mock := &mockContentGenerator{resp: textResp("huggingface", "ok")}
	g := NewLLM(log.NewNop(), mock, newTestFallback(t, "UTC", fixedNow))

	_, _ = g.Generate(context.Background(), []model.Task{task(1, "Pay bills", "2020-01-01", "urgent")})

	if mock.req.MaxTokens != 256 || mock.req.Temperature != 0.7 || mock.req.TopP != 0.95 || mock.req.RepetitionPenalty != 1.2 {
		t.Errorf("unexpected sampling parameters: %+v", mock.req)
	}
	prompt := mock.req.Messages[0].Text()
	if !strings.Contains(prompt, "- Pay bills (due: 2020-01-01) [urgent]: No description") {
		t.Errorf("prompt missing task line:\n%s", prompt)
	}
}

func TestLLM_NoPendingSkipsModel(t *testing.T) {
	mock := &mockContentGenerator{err: errors.New("should not be called")}
	g := NewLLM(log.NewNop(), mock, newTestFallback(t, "UTC", fixedNow))

	s, err := g.Generate(context.Background(), nil)
	if err != nil || s.Text != NoPendingMessage {
		t.Errorf("Generate = %+v, %v", s, err)
	}
	if mock.calls != 0 {
		t.Errorf("model called %d times for an empty list", mock.calls)
	}
}

func TestBuildPrompt(t *testing.T) {
	desc := model.StringPtr("Electricity and water")
	tasks := []model.Task{
		{Title: "Pay bills", Description: desc, DueDate: model.StringPtr("2025-05-20"), Category: model.StringPtr("personal")},
		{Title: "Stretch"},
	}

	got := BuildPrompt(tasks)
	for _, want := range []string{
		"- Pay bills (due: 2025-05-20) [personal]: Electricity and water\n",
		"- Stretch: No description\n",
		"1. Start with the total number of pending tasks",
		"Keep your response concise and direct.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}
