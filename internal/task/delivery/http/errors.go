package http

import (
	"errors"

	"task-extraction/internal/task"
	pkgErrors "task-extraction/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors surface as 500 without leaking internals.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "next step text is empty")
	case errors.Is(err, task.ErrInvalidSourceType):
		return pkgErrors.NewHTTPError(400, "source type must be call, space or manual")
	case errors.Is(err, task.ErrMissingSourceID):
		return pkgErrors.NewHTTPError(400, "source id is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
