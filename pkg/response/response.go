package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "todo-summary-assistant/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// Error sends an error response. HTTPErrors keep their status and details,
// anything else becomes a 500 carrying the error text.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			Message: httpErr.Message,
			Errors:  httpErr.Details,
		})
		return
	}
	InternalError(c, err)
}

// InternalError sends 500 with the error message.
func InternalError(c *gin.Context, err error) {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Resp{Message: msg})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Message: pkgErrors.ErrTooManyRequests.Message,
	})
}
