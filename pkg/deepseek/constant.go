package deepseek

import (
	"errors"
	"time"
)

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 60 * time.Second
)

var ErrAPIKeyRequired = errors.New("deepseek: API key is required")
