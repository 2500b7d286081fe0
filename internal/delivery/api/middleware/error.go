package middleware

import (
	"log/slog"
	"net/http"

	"pushcampaign/internal/delivery/api/response"
	deliverycontext "pushcampaign/internal/delivery/context"
	domainerrors "pushcampaign/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			// Details stay in the logs
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("details", appErr.Details()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			_ = response.Error(c, http.StatusNotFound, domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message())
		case http.StatusMethodNotAllowed:
			_ = response.Error(c, http.StatusMethodNotAllowed, domainerrors.ErrMethodNotAllowed.ErrorCode(), domainerrors.ErrMethodNotAllowed.Message())
		default:
			message := http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}

			_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message)
		}

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
