package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent calls models/{model}:generateContent. A response without
// usable candidates is reported as ErrNoCandidates.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var out generateResponse
	if err := g.post(ctx, fmt.Sprintf("/models/%s:generateContent", g.model), toWire(req), &out); err != nil {
		return nil, err
	}

	if len(out.Candidates) == 0 {
		if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("%w: prompt blocked (%s)", ErrNoCandidates, out.PromptFeedback.BlockReason)
		}
		return nil, ErrNoCandidates
	}
	return fromWire(out), nil
}

func (g *geminiImpl) Model() string {
	return g.model
}

// post sends body as JSON to path and decodes a 200 response into out.
func (g *geminiImpl) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("gemini: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerAPIKey, g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("gemini: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, resp.Body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gemini: decode response: %w", err)
	}
	return nil
}

func newAPIError(status int, body io.Reader) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}

	var wire errorResponse
	if json.Unmarshal(raw, &wire) == nil && wire.Error.Message != "" {
		apiErr.Message = wire.Error.Message
		apiErr.Status = wire.Error.Status
	}
	return apiErr
}

func toWire(req *Request) generateRequest {
	out := generateRequest{Contents: make([]wireContent, 0, len(req.Messages))}
	if req.SystemInstruction != nil {
		sys := contentToWire(*req.SystemInstruction)
		sys.Role = ""
		out.SystemInstruction = &sys
	}
	for _, msg := range req.Messages {
		out.Contents = append(out.Contents, contentToWire(msg))
	}
	if req.Temperature > 0 || req.TopP > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			TopP:            req.TopP,
			MaxOutputTokens: req.MaxTokens,
		}
	}
	return out
}

func contentToWire(c Content) wireContent {
	parts := make([]wirePart, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = wirePart{Text: p.Text}
	}
	return wireContent{Role: c.Role, Parts: parts}
}

// fromWire keeps the first candidate only.
func fromWire(resp generateResponse) *Response {
	first := resp.Candidates[0]
	out := &Response{
		Content:      Content{Role: first.Content.Role},
		FinishReason: first.FinishReason,
		Usage:        &Usage{},
	}
	for _, p := range first.Content.Parts {
		out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
	}
	if m := resp.UsageMetadata; m != nil {
		out.Usage = &Usage{
			InputTokens:  m.PromptTokenCount,
			OutputTokens: m.CandidatesTokenCount,
			TotalTokens:  m.TotalTokenCount,
		}
	}
	return out
}
