package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// Respond maps a domain error onto the right HTTP response. Unknown
// errors become a generic 500 without exposing internal details.
func Respond(c echo.Context, err error) error {
	switch {
	case domain.IsNotFound(err):
		return NotFoundError(c)
	case domain.IsValidation(err):
		return ValidationError(c, err)
	case domain.IsBadRequest(err):
		return BadRequestError(c, err)
	case domain.IsImportMalformed(err):
		return ImportMalformedError(c, err)
	case domain.IsRemoteUnavailable(err):
		return RemoteUnavailableError(c, err)
	default:
		return InternalError(c, err)
	}
}

// ValidationError returns a validation failure with the domain message.
func ValidationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

// BadRequestError returns a request-shape failure with the domain message.
func BadRequestError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// ImportMalformedError reports an unreadable upload.
func ImportMalformedError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "import_malformed",
		Message: err.Error(),
	})
}

// RemoteUnavailableError reports that the lead store could not be reached.
func RemoteUnavailableError(c echo.Context, err error) error {
	log.Printf("[STORE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error:   "remote_unavailable",
		Message: "The lead store is unavailable. Please try again later.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}
