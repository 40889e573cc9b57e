package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"todo-summary-assistant/pkg/deepseek"
	"todo-summary-assistant/pkg/gemini"
	"todo-summary-assistant/pkg/huggingface"
	"todo-summary-assistant/pkg/log"
)

// Manager tries providers in priority order, retrying each before moving on.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes the Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole chain, retries included
}

// NewManager creates a Manager. A nil config means one attempt on the first provider.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{RetryAttempts: 1}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first successful response. When fallback is
// disabled only the highest-priority provider is tried.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	candidates := m.providers
	if !m.config.FallbackEnabled {
		candidates = candidates[:1]
	}

	var lastErr error
	for _, provider := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: deadline reached before %s: %v", ErrAllProvidersFailed, provider.Name(), err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry waits attempt*RetryDelay before each retry. Permanent
// failures end the loop early.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(time.Duration(attempt-1) * m.config.RetryDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}
		m.logger.Debugf(ctx, "LLM attempt %d/%d failed: provider=%s error=%v", attempt, attempts, provider.Name(), err)
	}

	return nil, lastErr
}

// retryable reports whether another attempt could succeed. Client errors
// other than 429 and cancellation are permanent.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if code, ok := apiStatus(err); ok {
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}
	return true
}

func apiStatus(err error) (int, bool) {
	var (
		gErr  *gemini.APIError
		dsErr *deepseek.APIError
		hfErr *huggingface.APIError
	)
	switch {
	case errors.As(err, &gErr):
		return gErr.StatusCode, true
	case errors.As(err, &dsErr):
		return dsErr.StatusCode, true
	case errors.As(err, &hfErr):
		return hfErr.StatusCode, true
	}
	return 0, false
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
