package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type webhookImpl struct {
	url        string
	httpClient *http.Client
}

func newWebhookImpl(cfg Config) *webhookImpl {
	return &webhookImpl{url: cfg.WebhookURL, httpClient: cfg.HTTPClient}
}

func (w *webhookImpl) Configured() bool {
	return w.url != ""
}

// PostMessage sends msg to the webhook.
func (w *webhookImpl) PostMessage(ctx context.Context, msg Message) error {
	if !w.Configured() {
		return ErrWebhookNotConfigured
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return nil
}
