package deepseek

import "context"

// IDeepSeek defines the interface for DeepSeek LLM client.
// Any OpenAI-compatible chat completions endpoint works through BaseURL.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
