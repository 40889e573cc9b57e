package slack

import (
	"context"
	"net/http"
)

// IWebhook posts messages to a Slack incoming webhook.
// Implementations are safe for concurrent use.
type IWebhook interface {
	PostMessage(ctx context.Context, msg Message) error
	Configured() bool
}

// New creates a webhook client. An empty WebhookURL yields a client whose
// PostMessage always returns ErrWebhookNotConfigured.
func New(cfg Config) IWebhook {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return newWebhookImpl(cfg)
}
