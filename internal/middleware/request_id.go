package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-summary-assistant/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates or assigns a request id and stores it as the log trace id.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}
