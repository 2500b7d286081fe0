package handler

import (
	"log/slog"

	"pushcampaign/internal/delivery/api/response"
	"pushcampaign/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	subscriptionCreatedMessage = "Subscription saved"
	subscriptionUpdatedMessage = "Subscription updated"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents a browser push subscription posted by the subscribe page
type SubscribeRequest struct {
	Endpoint  string  `json:"endpoint" validate:"required"`
	P256dh    string  `json:"p256dh" validate:"required"`
	Auth      string  `json:"auth" validate:"required"`
	StoreID   string  `json:"store_id" validate:"required"`
	UserAgent *string `json:"user_agent,omitempty"`
}

// Subscribe registers or refreshes a browser push subscription
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.subscriptionUC.Register(c.Request().Context(), &usecase.SubscriptionInput{
		StoreID:   req.StoreID,
		Endpoint:  req.Endpoint,
		P256dh:    req.P256dh,
		Auth:      req.Auth,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := subscriptionUpdatedMessage
	if result.Created {
		message = subscriptionCreatedMessage
	}

	return response.OK(c, map[string]any{
		"subscription_id": result.SubscriptionID,
		"message":         message,
	})
}
