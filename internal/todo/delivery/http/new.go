package http

import (
	"github.com/gin-gonic/gin"

	"todo-summary-assistant/internal/todo"
	"todo-summary-assistant/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
