package notification

import (
	"context"
	"errors"

	"todo-summary-assistant/pkg/log"
	"todo-summary-assistant/pkg/slack"
)

const (
	msgSlackSent          = "Summary sent to Slack successfully"
	msgSlackNotConfigured = "Slack webhook URL is not configured"
)

type slackSender struct {
	l      log.Logger
	client slack.IWebhook
}

// NewSlackSender posts summaries through a Slack incoming webhook.
func NewSlackSender(l log.Logger, client slack.IWebhook) Sender {
	return &slackSender{l: l, client: client}
}

func (s *slackSender) Send(ctx context.Context, summary string) Result {
	if s.client == nil || !s.client.Configured() {
		return Result{Success: false, Message: msgSlackNotConfigured}
	}

	err := s.client.PostMessage(ctx, slack.Message{Text: format(summary)})
	if errors.Is(err, slack.ErrWebhookNotConfigured) {
		return Result{Success: false, Message: msgSlackNotConfigured}
	}
	if err != nil {
		s.l.Warnf(ctx, "notification.slack.Send: %v", err)
		return failed(err)
	}

	s.l.Infof(ctx, "notification.slack.Send: summary delivered")
	return Result{Success: true, Message: msgSlackSent}
}
