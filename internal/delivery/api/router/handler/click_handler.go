package handler

import (
	"log/slog"

	"pushcampaign/internal/delivery/api/response"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClickHandlerParams holds dependencies for ClickHandler, injected by Fx.
type ClickHandlerParams struct {
	fx.In

	ClickUC usecase.ClickUsecase
	Logger  *slog.Logger
}

// ClickHandler records notification clicks reported by the service worker
type ClickHandler struct {
	clickUC usecase.ClickUsecase
	logger  *slog.Logger
}

// NewClickHandler is the constructor for ClickHandler
func NewClickHandler(params ClickHandlerParams) *ClickHandler {
	return &ClickHandler{
		clickUC: params.ClickUC,
		logger:  params.Logger,
	}
}

// TrackClickRequest represents a notification click
type TrackClickRequest struct {
	CampaignID     string `json:"campaign_id" validate:"required,uuid"`
	SubscriptionID string `json:"subscription_id" validate:"omitempty,uuid"`
}

// TrackClick records a click and returns the campaign's new click count
func (h *ClickHandler) TrackClick(c echo.Context) error {
	var req TrackClickRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid click input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithMessage("Invalid fields: campaign_id"))
	}

	var subscriptionID *uuid.UUID
	if req.SubscriptionID != "" {
		parsed, err := uuid.Parse(req.SubscriptionID)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithMessage("Invalid fields: subscription_id"))
		}
		subscriptionID = &parsed
	}

	clickCount, err := h.clickUC.TrackClick(c.Request().Context(), campaignID, subscriptionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{
		"click_count": clickCount,
	})
}
