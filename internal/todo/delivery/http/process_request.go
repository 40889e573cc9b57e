package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-summary-assistant/internal/todo"
	pkgErrors "todo-summary-assistant/pkg/errors"
)

// processID parses the numeric :id path parameter.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// processCreateReq binds the create body. An empty body is treated as {}.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, bindError(err)
	}
	return req, nil
}

// processUpdateReq binds the update body and the :id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, bindError(err)
	}
	req.ID = id
	return req, nil
}

// bindError reports malformed JSON in the same shape as validation failures.
func bindError(err error) error {
	field := "body"
	msg := "must be a valid JSON object"

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field = typeErr.Field
		msg = "must be of type " + typeErr.Type.String()
	}

	return pkgErrors.NewHTTPErrorWithDetails(http.StatusBadRequest, msgInvalidData,
		[]todo.FieldError{{Field: field, Message: msg}})
}
