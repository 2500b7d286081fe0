package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PreflightOK answers CORS pre-flight requests with 200 instead of echo's 204.
// It must run before the CORS middleware.
func PreflightOK(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method == http.MethodOptions {
			res := c.Response()
			res.Writer = &preflightWriter{ResponseWriter: res.Writer}
		}

		return next(c)
	}
}

type preflightWriter struct {
	http.ResponseWriter
}

func (w *preflightWriter) WriteHeader(code int) {
	if code == http.StatusNoContent {
		code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *preflightWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
