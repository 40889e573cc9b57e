package http

import (
	"errors"
	"net/http"

	"todo-summary-assistant/internal/todo"
	pkgErrors "todo-summary-assistant/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid todo ID")
	errNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "Todo not found")
	msgInvalidData = "Invalid todo data"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500 carrying fallback.
func (h *handler) mapError(err error, fallback string) error {
	var verr *todo.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkgErrors.NewHTTPErrorWithDetails(http.StatusBadRequest, msgInvalidData, verr.Fields)
	case errors.Is(err, todo.ErrTodoNotFound):
		return errNotFound
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, fallback)
	}
}
