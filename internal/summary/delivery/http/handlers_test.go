package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-summary-assistant/internal/notification"
	"todo-summary-assistant/internal/summary"
	"todo-summary-assistant/pkg/log"
)

type mockUseCase struct {
	summarizeInput summary.SummarizeInput
	summarizeOut   summary.SummarizeOutput
	summarizeErr   error
	sent           string
	result         notification.Result
}

func (m *mockUseCase) Summarize(ctx context.Context, input summary.SummarizeInput) (summary.SummarizeOutput, error) {
	m.summarizeInput = input
	return m.summarizeOut, m.summarizeErr
}
func (m *mockUseCase) SendToSlack(ctx context.Context, text string) (notification.Result, error) {
	m.sent = text
	return m.result, nil
}
func (m *mockUseCase) SendToTelegram(ctx context.Context, text string) (notification.Result, error) {
	m.sent = text
	return m.result, nil
}

func newRouter(uc summary.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc), nil)
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSlack bool
	}{
		{"empty body", "", false},
		{"no flag", `{}`, false},
		{"flag true", `{"sendToSlack":true}`, true},
		{"flag string", `{"sendToSlack":"true"}`, false},
		{"flag number", `{"sendToSlack":1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{summarizeOut: summary.SummarizeOutput{Summary: "You have 1 pending task."}}
			w := post(newRouter(uc), "/api/summarize", tt.body)

			if w.Code != http.StatusOK {
				t.Fatalf("code = %d: %s", w.Code, w.Body.String())
			}
			if uc.summarizeInput.SendToSlack != tt.wantSlack {
				t.Errorf("SendToSlack = %v, want %v", uc.summarizeInput.SendToSlack, tt.wantSlack)
			}
			if w.Body.String() != `{"summary":"You have 1 pending task."}` {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}
}

func TestSummarize_WithSlackResult(t *testing.T) {
	uc := &mockUseCase{summarizeOut: summary.SummarizeOutput{
		Summary: "s",
		Slack:   &notification.Result{Success: false, Message: "Slack webhook URL is not configured"},
	}}
	w := post(newRouter(uc), "/api/summarize", `{"sendToSlack":true}`)

	want := `{"summary":"s","slack":{"success":false,"message":"Slack webhook URL is not configured"}}`
	if w.Code != http.StatusOK || w.Body.String() != want {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}

func TestSummarize_Error(t *testing.T) {
	uc := &mockUseCase{summarizeErr: errors.New("store down")}
	w := post(newRouter(uc), "/api/summarize", `{}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Failed to generate summary: store down" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestSend(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"slack empty object", "/api/send-to-slack", `{}`, http.StatusBadRequest},
		{"slack empty string", "/api/send-to-slack", `{"summary":""}`, http.StatusBadRequest},
		{"slack non-string", "/api/send-to-slack", `{"summary":42}`, http.StatusBadRequest},
		{"slack malformed", "/api/send-to-slack", `{"summary"`, http.StatusBadRequest},
		{"slack ok", "/api/send-to-slack", `{"summary":"hello"}`, http.StatusOK},
		{"telegram empty object", "/api/send-to-telegram", `{}`, http.StatusBadRequest},
		{"telegram ok", "/api/send-to-telegram", `{"summary":"hello"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{result: notification.Result{Success: true, Message: "Summary sent to Slack successfully"}}
			w := post(newRouter(uc), tt.path, tt.body)

			if w.Code != tt.code {
				t.Fatalf("code = %d, want %d: %s", w.Code, tt.code, w.Body.String())
			}
			if tt.code == http.StatusBadRequest {
				if w.Body.String() != `{"message":"Summary is required"}` {
					t.Errorf("body = %s", w.Body.String())
				}
				if uc.sent != "" {
					t.Errorf("use case called on invalid input")
				}
				return
			}
			if uc.sent != "hello" || w.Body.String() != `{"success":true,"message":"Summary sent to Slack successfully"}` {
				t.Errorf("sent %q, body %s", uc.sent, w.Body.String())
			}
		})
	}
}
