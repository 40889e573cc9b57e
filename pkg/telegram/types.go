package telegram

import (
	"net/http"
	"time"
)

const (
	DefaultAPIURL  = "https://api.telegram.org"
	DefaultTimeout = 15 * time.Second

	// MaxMessageLength is the Bot API limit for a single message, in characters.
	MaxMessageLength = 4096
)

// Config holds Telegram bot configuration
type Config struct {
	Token      string
	APIURL     string // base URL without the /bot<token> suffix
	HTTPClient *http.Client
}

// SendMessageRequest is the payload for Telegram sendMessage API.
type SendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// APIResponse is a generic Telegram Bot API response wrapper.
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}
