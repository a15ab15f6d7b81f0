package http

import (
	"errors"
	"net/http"

	"intelligent-task-management/internal/prediction"
	pkgErrors "intelligent-task-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if errors.Is(err, prediction.ErrModelNotTrained) {
		return pkgErrors.NewHTTPError(http.StatusConflict, "model is not trained yet, train it first")
	}
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
