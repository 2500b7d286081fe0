package main

import (
	"context"
	"log/slog"
	"os"

	"pushcampaign/config"
	"pushcampaign/internal/delivery"
	"pushcampaign/internal/delivery/api"
	"pushcampaign/internal/delivery/api/router/handler"
	"pushcampaign/internal/domain/service"
	logs "pushcampaign/internal/infra/log"
	"pushcampaign/internal/infra/notification"
	"pushcampaign/internal/infra/persistence/postgres"
	"pushcampaign/internal/infra/pubsub"
	"pushcampaign/internal/infra/qrcode"
	"pushcampaign/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSubscriptionRepository,
			postgres.NewCampaignRepository,
			postgres.NewDeliveryRecordRepository,
			postgres.NewClickRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatcher,
			impl.NewCampaignService,
			impl.NewSubscriptionService,
			impl.NewClickService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSubscriptionHandler,
			handler.NewCampaignHandler,
			handler.NewClickHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
