package http

import (
	"todo-summary-assistant/internal/notification"
	"todo-summary-assistant/internal/summary"
)

// --- Request DTOs ---

// summarizeReq accepts any JSON for sendToSlack; only literal true opts in.
type summarizeReq struct {
	SendToSlack any `json:"sendToSlack"`
}

func (r summarizeReq) toInput() summary.SummarizeInput {
	send, _ := r.SendToSlack.(bool)
	return summary.SummarizeInput{SendToSlack: send}
}

// sendReq carries an already generated summary. It must be a non-empty string.
type sendReq struct {
	Summary any `json:"summary"`
}

func (r sendReq) text() (string, bool) {
	s, ok := r.Summary.(string)
	return s, ok && s != ""
}

// --- Response DTOs ---

type summarizeResp struct {
	Summary string               `json:"summary"`
	Slack   *notification.Result `json:"slack,omitempty"`
}

func (h *handler) newSummarizeResp(out summary.SummarizeOutput) summarizeResp {
	return summarizeResp{Summary: out.Summary, Slack: out.Slack}
}
