package handler

import (
	"pushcampaign/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]any{"status": "ok"})
}
