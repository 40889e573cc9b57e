package notification

import (
	"context"

	"todo-summary-assistant/pkg/log"
)

const (
	msgTelegramSent          = "Summary sent to Telegram successfully"
	msgTelegramNotConfigured = "Telegram bot token or chat ID is not configured"
)

// TelegramBot is satisfied by *telegram.Bot.
type TelegramBot interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type telegramSender struct {
	l      log.Logger
	bot    TelegramBot
	chatID int64
}

// NewTelegramSender sends summaries to a single Telegram chat. bot may be nil
// when no token is configured.
func NewTelegramSender(l log.Logger, bot TelegramBot, chatID int64) Sender {
	return &telegramSender{l: l, bot: bot, chatID: chatID}
}

func (s *telegramSender) Send(ctx context.Context, summary string) Result {
	if s.bot == nil || s.chatID == 0 {
		return Result{Success: false, Message: msgTelegramNotConfigured}
	}

	if err := s.bot.SendMessageWithMode(ctx, s.chatID, format(summary), "Markdown"); err != nil {
		s.l.Warnf(ctx, "notification.telegram.Send: %v", err)
		return failed(err)
	}

	s.l.Infof(ctx, "notification.telegram.Send: summary delivered to chat %d", s.chatID)
	return Result{Success: true, Message: msgTelegramSent}
}
