package slack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostMessage(t *testing.T) {
	var got Message
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", r.Method, r.Header.Get("Content-Type"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	c := New(Config{WebhookURL: ts.URL})
	if err := c.PostMessage(context.Background(), Message{Text: "*Todo Summary*\n\nhello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "*Todo Summary*\n\nhello" {
		t.Errorf("payload text = %q", got.Text)
	}
}

func TestPostMessage_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no_service"))
	}))
	defer ts.Close()

	err := New(Config{WebhookURL: ts.URL}).PostMessage(context.Background(), Message{Text: "x"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Error() != "Slack API error 404: no_service" {
		t.Errorf("message = %q", apiErr.Error())
	}
}

func TestPostMessage_NotConfigured(t *testing.T) {
	c := New(Config{})
	if c.Configured() {
		t.Error("expected unconfigured client")
	}
	if err := c.PostMessage(context.Background(), Message{Text: "x"}); !errors.Is(err, ErrWebhookNotConfigured) {
		t.Errorf("expected ErrWebhookNotConfigured, got %v", err)
	}
}

func TestPostMessage_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	if err := New(Config{WebhookURL: url}).PostMessage(context.Background(), Message{Text: "x"}); err == nil {
		t.Error("expected transport error")
	}
}
