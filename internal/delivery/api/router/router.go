// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"pushcampaign/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushAPIPrefix is the path every push campaign route lives under
const PushAPIPrefix = "/api/push"

type RouterParams struct {
	fx.In

	SubscriptionHandler *handler.SubscriptionHandler
	CampaignHandler     *handler.CampaignHandler
	ClickHandler        *handler.ClickHandler
}

// Route maps one (method, path) pair to its handler.
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
}

// router holds all the handlers that need to be registered.
type router struct {
	subscriptionHandler *handler.SubscriptionHandler
	campaignHandler     *handler.CampaignHandler
	clickHandler        *handler.ClickHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		subscriptionHandler: params.SubscriptionHandler,
		campaignHandler:     params.CampaignHandler,
		clickHandler:        params.ClickHandler,
	}
}

// Routes is the routing table of the push API, relative to PushAPIPrefix.
func (r *router) Routes() []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/subscribe", Handler: r.subscriptionHandler.Subscribe},
		{Method: http.MethodPost, Path: "/send", Handler: r.campaignHandler.Send},
		{Method: http.MethodPost, Path: "/schedule", Handler: r.campaignHandler.Schedule},
		{Method: http.MethodPost, Path: "/track-click", Handler: r.clickHandler.TrackClick},
		{Method: http.MethodGet, Path: "/stats", Handler: r.campaignHandler.Stats},
		{Method: http.MethodGet, Path: "/stores/:storeId/qr", Handler: r.campaignHandler.StoreQR},
		{Method: http.MethodPost, Path: "/scheduled/release", Handler: r.campaignHandler.ReleaseDue},
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	pushGroup := e.Group(PushAPIPrefix)
	for _, route := range r.Routes() {
		pushGroup.Add(route.Method, route.Path, route.Handler)
	}
}
