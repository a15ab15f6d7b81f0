package http

import (
	"errors"
	"net/http"

	"intelligent-task-management/internal/prediction"
	"intelligent-task-management/internal/schedule"
	pkgErrors "intelligent-task-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, prediction.ErrModelNotTrained):
		return pkgErrors.NewHTTPError(http.StatusConflict, "model is not trained yet, train it first")
	case errors.Is(err, schedule.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, "calendar export is not configured")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
