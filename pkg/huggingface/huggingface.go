package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newHuggingFaceImpl(cfg Config) *huggingFaceImpl {
	return &huggingFaceImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (h *huggingFaceImpl) Model() string {
	return h.model
}

// TextGeneration calls the hosted inference endpoint for the configured model.
// Only the completion is requested (return_full_text=false).
func (h *huggingFaceImpl) TextGeneration(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(textGenerationRequest{
		Inputs: req.Inputs,
		Parameters: textGenerationParameters{
			MaxNewTokens:      req.Parameters.MaxNewTokens,
			Temperature:       req.Parameters.Temperature,
			TopP:              req.Parameters.TopP,
			RepetitionPenalty: req.Parameters.RepetitionPenalty,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", h.baseURL, h.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
		return nil, apiErr
	}

	var outputs []textGenerationOutput
	if err := json.Unmarshal(raw, &outputs); err != nil {
		return nil, fmt.Errorf("huggingface: failed to decode response: %w", err)
	}
	if len(outputs) == 0 {
		return &Response{}, nil
	}

	return &Response{GeneratedText: outputs[0].GeneratedText}, nil
}
