package response

import (
	"net/http"

	domainerrors "pushcampaign/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`          // User-friendly error message
	Code    string `json:"code,omitempty"` // Machine-readable error code, e.g., "VALIDATION_FAILED"
}

// Success returns a successful response, flattening payload next to the success flag
func Success(c echo.Context, statusCode int, payload map[string]any) error {
	body := make(map[string]any, len(payload)+1)
	for key, value := range payload {
		body[key] = value
	}
	body["success"] = true

	return c.JSON(statusCode, body)
}

// OK returns a 200 success response
func OK(c echo.Context, payload map[string]any) error {
	return Success(c, http.StatusOK, payload)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    errorCode,
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Other errors are returned to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
