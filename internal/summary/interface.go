package summary

import (
	"context"

	"todo-summary-assistant/internal/notification"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Summarize summarizes pending todos and optionally posts the result to Slack.
	Summarize(ctx context.Context, input SummarizeInput) (SummarizeOutput, error)
	// SendToSlack posts an already generated summary.
	SendToSlack(ctx context.Context, summary string) (notification.Result, error)
	// SendToTelegram posts an already generated summary to the configured chat.
	SendToTelegram(ctx context.Context, summary string) (notification.Result, error)
}
