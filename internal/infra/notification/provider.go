package notification

import (
	"context"
	"log/slog"
	"net/http"

	"pushcampaign/config"
	"pushcampaign/internal/domain/constants"
	"pushcampaign/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates the PushSender selected by push.provider
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Push
	logger := params.Logger

	switch cfg.Provider {
	case constants.PushProviderVAPID:
		logger.Info("Using Web Push VAPID sender",
			slog.String("subscriber", cfg.VAPID.Subscriber),
		)

		return NewVAPIDSender(cfg.VAPID, &http.Client{}, logger)

	case constants.PushProviderFirebase:
		if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials path is required for firebase provider")
		}
		logger.Info("Using Firebase Cloud Messaging sender",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFirebaseSender(params.Ctx, params.Config.Firebase.CredentialsPath, logger)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push sender FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushSender),
)
