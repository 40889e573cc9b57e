package usecase

import (
	"context"
	"fmt"

	"todo-summary-assistant/internal/notification"
	"todo-summary-assistant/internal/summary"
)

// Summarize generates a summary of all pending todos. Upstream failures
// degrade to the local summary or a failed Slack result, never an error.
func (uc *implUseCase) Summarize(ctx context.Context, input summary.SummarizeInput) (summary.SummarizeOutput, error) {
	list, err := uc.todos.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summarize List: %v", err)
		return summary.SummarizeOutput{}, err
	}

	s, err := uc.generator.Generate(ctx, list.Todos)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summarize Generate: %v", err)
		return summary.SummarizeOutput{}, fmt.Errorf("generate summary: %w", err)
	}
	uc.l.Infof(ctx, "uc.Summarize: source=%s todos=%d", s.Source, len(list.Todos))

	out := summary.SummarizeOutput{Summary: s.Text, Source: s.Source}
	if input.SendToSlack {
		res := uc.slack.Send(ctx, s.Text)
		out.Slack = &res
	}
	return out, nil
}

// SendToSlack posts an existing summary to Slack.
func (uc *implUseCase) SendToSlack(ctx context.Context, text string) (notification.Result, error) {
	if text == "" {
		return notification.Result{}, summary.ErrSummaryRequired
	}
	return uc.slack.Send(ctx, text), nil
}

// SendToTelegram posts an existing summary to Telegram.
func (uc *implUseCase) SendToTelegram(ctx context.Context, text string) (notification.Result, error) {
	if text == "" {
		return notification.Result{}, summary.ErrSummaryRequired
	}
	if uc.telegram == nil {
		return notification.Result{Success: false, Message: "Telegram is not configured"}, nil
	}
	return uc.telegram.Send(ctx, text), nil
}
