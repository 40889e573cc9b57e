package http

import (
	"github.com/gin-gonic/gin"

	"todo-summary-assistant/internal/summary"
	"todo-summary-assistant/pkg/log"
)

// Handler is the public interface for the summary HTTP delivery layer.
type Handler interface {
	Summarize(c *gin.Context)
	SendToSlack(c *gin.Context)
	SendToTelegram(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc summary.UseCase
}

// New creates a new HTTP handler for the summary domain.
func New(l log.Logger, uc summary.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
