package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pushcampaign/internal/delivery/api/response"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler holds dependencies for campaign-related handlers
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	logger     *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: params.CampaignUC,
		logger:     params.Logger,
	}
}

// SendRequest represents the request body for an immediate campaign
type SendRequest struct {
	Title        string  `json:"title" validate:"required"`
	Body         string  `json:"body" validate:"required"`
	StoreID      string  `json:"store_id" validate:"required"`
	UserID       string  `json:"user_id"`
	CampaignName string  `json:"campaign_name"`
	Icon         *string `json:"icon,omitempty"`
	URL          *string `json:"url,omitempty"`
}

// ScheduleRequest represents the request body for a scheduled campaign
type ScheduleRequest struct {
	Title        string  `json:"title" validate:"required"`
	Body         string  `json:"body" validate:"required"`
	StoreID      string  `json:"store_id" validate:"required"`
	UserID       string  `json:"user_id" validate:"required"`
	ScheduledFor string  `json:"scheduled_for" validate:"required"`
	CampaignName string  `json:"campaign_name"`
	Icon         *string `json:"icon,omitempty"`
	URL          *string `json:"url,omitempty"`
}

// StatsRequest carries the store whose campaigns are listed
type StatsRequest struct {
	StoreID string `query:"store_id" json:"store_id" validate:"required"`
}

// ReleaseRequest optionally bounds how many due campaigns are released
type ReleaseRequest struct {
	Limit int `json:"limit" validate:"gte=0"`
}

// Send creates a campaign and dispatches it to every active subscriber of the store
func (h *CampaignHandler) Send(c echo.Context) error {
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid campaign input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.campaignUC.Send(c.Request().Context(), &usecase.CampaignInput{
		StoreID: req.StoreID,
		UserID:  req.UserID,
		Name:    req.CampaignName,
		Title:   req.Title,
		Body:    req.Body,
		Icon:    req.Icon,
		URL:     req.URL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload := map[string]any{
		"campaign_id": result.CampaignID,
		"sent":        result.Sent,
		"failed":      result.Failed,
		"total":       result.Total,
	}
	if result.Message != "" {
		payload["message"] = result.Message
	}

	return response.OK(c, payload)
}

// Schedule persists a campaign for later delivery
func (h *CampaignHandler) Schedule(c echo.Context) error {
	var req ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid campaign input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	scheduledFor, err := time.Parse(time.RFC3339, req.ScheduledFor)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithMessage("scheduled_for must be an RFC 3339 timestamp"))
	}

	campaign, err := h.campaignUC.Schedule(c.Request().Context(), &usecase.CampaignInput{
		StoreID: req.StoreID,
		UserID:  req.UserID,
		Name:    req.CampaignName,
		Title:   req.Title,
		Body:    req.Body,
		Icon:    req.Icon,
		URL:     req.URL,
	}, scheduledFor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{
		"campaign_id":   campaign.ID,
		"scheduled_for": scheduledFor.UTC().Format(time.RFC3339),
	})
}

// Stats lists the store's campaigns, newest first
func (h *CampaignHandler) Stats(c echo.Context) error {
	var req StatsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	campaigns, err := h.campaignUC.ListByStore(c.Request().Context(), req.StoreID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{
		"campaigns": campaigns,
	})
}

// StoreQR returns the PNG QR code that opens the store's subscribe page
func (h *CampaignHandler) StoreQR(c echo.Context) error {
	png, err := h.campaignUC.GenerateStoreQR(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ReleaseDue publishes dispatch events for scheduled campaigns whose time has come
func (h *CampaignHandler) ReleaseDue(c echo.Context) error {
	var req ReleaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid release input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	released, err := h.campaignUC.ReleaseDue(c.Request().Context(), req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{
		"released": released,
	})
}
