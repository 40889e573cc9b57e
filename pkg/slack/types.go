package slack

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

// ErrWebhookNotConfigured is returned when no incoming-webhook URL is set.
var ErrWebhookNotConfigured = errors.New("slack webhook URL is not configured")

// Config holds Slack incoming-webhook configuration
type Config struct {
	WebhookURL string
	HTTPClient *http.Client
}

// Message is the incoming-webhook payload. Text supports Slack mrkdwn.
type Message struct {
	Text string `json:"text"`
}

// APIError is returned for any non-2xx webhook response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Slack API error %d: %s", e.StatusCode, e.Body)
}
