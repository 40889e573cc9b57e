package summary

import "todo-summary-assistant/internal/notification"

// --- UseCase Inputs ---

type SummarizeInput struct {
	SendToSlack bool
}

// --- UseCase Outputs ---

type SummarizeOutput struct {
	Summary string
	// Source is "fallback" or "llm:<provider>"; logged, not exposed.
	Source string
	// Slack is set only when delivery was requested.
	Slack *notification.Result
}
