package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "library-service/internal/errors"
)

// errorBody is the structured error payload every failure returns.
type errorBody struct {
	Message string `json:"message"`
}

// respondError maps a service error to its HTTP status. Anything that
// is not a ServiceError is logged and collapsed to a bare 500 so
// internals never leak to callers.
func respondError(c echo.Context, err error) error {
	serviceErr := apperrors.AsServiceError(err)
	if serviceErr == nil {
		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, errorBody{Message: "internal server error"})
	}

	if serviceErr.Code == apperrors.CodeInternal {
		log.Printf("internal error on %s %s: %v", c.Request().Method, c.Path(), serviceErr)
		return c.JSON(serviceErr.HTTPStatus, errorBody{Message: "internal server error"})
	}

	return c.JSON(serviceErr.HTTPStatus, errorBody{Message: serviceErr.Message})
}
