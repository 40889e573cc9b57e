package huggingface

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds Hugging Face client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("huggingface: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type huggingFaceImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Request is a text-generation request
type Request struct {
	Inputs     string
	Parameters Parameters
}

// Parameters tune text generation. Zero values are omitted.
type Parameters struct {
	MaxNewTokens      int
	Temperature       float64
	TopP              float64
	RepetitionPenalty float64
}

// Response is a text-generation result
type Response struct {
	GeneratedText string
}

type textGenerationRequest struct {
	Inputs     string                   `json:"inputs"`
	Parameters textGenerationParameters `json:"parameters"`
}

type textGenerationParameters struct {
	MaxNewTokens      int     `json:"max_new_tokens,omitempty"`
	Temperature       float64 `json:"temperature,omitempty"`
	TopP              float64 `json:"top_p,omitempty"`
	RepetitionPenalty float64 `json:"repetition_penalty,omitempty"`
	ReturnFullText    bool    `json:"return_full_text"`
}

type textGenerationOutput struct {
	GeneratedText string `json:"generated_text"`
}

// APIError is a non-200 answer from the inference endpoint. A 503 usually
// means the model is still loading.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface: API error %d: %s", e.StatusCode, e.Message)
}

type errorResponse struct {
	Error string `json:"error"`
}
