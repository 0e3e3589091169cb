package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "restromart/internal/errors"
)

// respondError translates a domain error into the shared response envelope.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, apperrors.Fail(httpErr.Message))
}
