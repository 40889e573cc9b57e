package llmprovider

import (
	"context"
	"strings"

	"todo-summary-assistant/pkg/deepseek"
	"todo-summary-assistant/pkg/gemini"
	"todo-summary-assistant/pkg/huggingface"
)

const (
	ProviderGemini      = "gemini"
	ProviderDeepSeek    = "deepseek"
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		sys := toGeminiContent(*req.SystemInstruction)
		geminiReq.SystemInstruction = &sys
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = toGeminiContent(msg)
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiContent(msg Message) gemini.Content {
	role := msg.Role
	if role == "assistant" {
		role = "model"
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return gemini.Content{Role: role, Parts: parts}
}

// DeepSeekAdapter adapts pkg/deepseek (any OpenAI-compatible chat endpoint)
// to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
	name   string
}

// NewDeepSeekAdapter creates a new DeepSeek adapter reporting the given provider name
func NewDeepSeekAdapter(client deepseek.IDeepSeek, name string) *DeepSeekAdapter {
	if name == "" {
		name = ProviderDeepSeek
	}
	return &DeepSeekAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "system", Content: req.SystemInstruction.Text()})
	}
	for _, msg := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Text()}}},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// HuggingFaceAdapter adapts pkg/huggingface to llmprovider.Provider interface.
// Text-generation models take a single prompt, so the conversation is flattened.
type HuggingFaceAdapter struct {
	client huggingface.IHuggingFace
}

// NewHuggingFaceAdapter creates a new Hugging Face adapter
func NewHuggingFaceAdapter(client huggingface.IHuggingFace) *HuggingFaceAdapter {
	return &HuggingFaceAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *HuggingFaceAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var sections []string
	if req.SystemInstruction != nil {
		sections = append(sections, req.SystemInstruction.Text())
	}
	for _, msg := range req.Messages {
		sections = append(sections, msg.Text())
	}

	resp, err := a.client.TextGeneration(ctx, &huggingface.Request{
		Inputs: strings.Join(sections, "\n\n"),
		Parameters: huggingface.Parameters{
			MaxNewTokens:      req.MaxTokens,
			Temperature:       req.Temperature,
			TopP:              req.TopP,
			RepetitionPenalty: req.RepetitionPenalty,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.GeneratedText}}},
		ProviderName: ProviderHuggingFace,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (a *HuggingFaceAdapter) Name() string {
	return ProviderHuggingFace
}

// Model returns model name
func (a *HuggingFaceAdapter) Model() string {
	return a.client.Model()
}
