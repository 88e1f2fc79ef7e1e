package handler

import (
	"errors"
	"net/http"

	"github.com/harborview/hotel-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service sentinels onto the HTTP contract. Anything
// unrecognized is a transient failure the caller should retry whole.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOverlap):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "please wait a minute before requesting a new code")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to process the request right now, please retry")
	}
}
