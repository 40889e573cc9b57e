package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"todo-summary-assistant/pkg/response"
)

// Recovery turns panics into a 500 JSON response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.l.Errorf(c.Request.Context(), "panic recovered: %v\n%s", rec, debug.Stack())
				if !c.Writer.Written() {
					response.InternalError(c, fmt.Errorf("%v", rec))
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
