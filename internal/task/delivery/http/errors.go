package http

import (
	"errors"
	"net/http"

	"todo-tracker/internal/task"
	"todo-tracker/pkg/response"
)

var errInvalidIndexParam = errors.New("index must be a positive integer")

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidDateFormat):
		return response.NewHTTPError(http.StatusBadRequest, "invalid date format, expected DD/MM/YYYY")
	case errors.Is(err, task.ErrInvalidIndex):
		return response.NewHTTPError(http.StatusNotFound, "invalid task number")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
