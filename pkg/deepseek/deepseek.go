package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.HTTPClient,
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// GenerateContent requests a single non-streaming completion. The client's
// model is used when req.Model is empty.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	payload := *req
	payload.Stream = false
	if payload.Model == "" {
		payload.Model = c.model
	}

	raw, status, err := c.do(ctx, "/chat/completions", payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, parseAPIError(status, raw)
	}

	var result Response
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("deepseek: parse response: %w", err)
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, path string, body any) ([]byte, int, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("deepseek: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, 0, fmt.Errorf("deepseek: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("deepseek: send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("deepseek: read response: %w", err)
	}
	return raw, resp.StatusCode, nil
}

// parseAPIError prefers the structured error message and falls back to the raw body.
func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}

	var body ErrorResponse
	if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
		apiErr.Message = body.Error.Message
		apiErr.Type = body.Error.Type
	}
	return apiErr
}
