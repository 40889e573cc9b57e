package http

import (
	"errors"
	"net/http"

	"todo-summary-assistant/internal/summary"
	pkgErrors "todo-summary-assistant/pkg/errors"
)

var (
	errSummaryRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Summary is required")
	errInvalidBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error, prefix string) error {
	switch {
	case errors.Is(err, summary.ErrSummaryRequired):
		return errSummaryRequired
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, prefix+": "+err.Error())
	}
}
