// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pushcampaign/config"
	deliverycontext "pushcampaign/internal/delivery/context"
	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/domain/service"
	"pushcampaign/internal/errors"
	"pushcampaign/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultSendCampaignName     = "Campaña sin nombre"
	defaultScheduleCampaignName = "Campaña programada"
)

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	campaignRepo     repository.CampaignRepository
	dispatcher       usecase.Dispatcher
	publisher        service.EventPublisher
	qrcodeSvc        service.QRCodeService
	releaseBatchSize int
	logger           *slog.Logger
	now              func() time.Time
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	Dispatcher   usecase.Dispatcher
	Publisher    service.EventPublisher
	QRCodeSvc    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo:     params.CampaignRepo,
		dispatcher:       params.Dispatcher,
		publisher:        params.Publisher,
		qrcodeSvc:        params.QRCodeSvc,
		releaseBatchSize: params.Config.Dispatch.ReleaseBatchSize,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send creates a campaign and dispatches it immediately.
func (srv *campaignService) Send(ctx context.Context, input *usecase.CampaignInput) (*entity.DispatchResult, error) {
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}

	sentAt := srv.now()
	campaign := buildCampaign(input, defaultSendCampaignName)
	campaign.Status = entity.CampaignStatusSent
	campaign.SentAt = &sentAt

	if err := srv.campaignRepo.Create(ctx, campaign); err != nil {
		srv.log(ctx).Error("Failed to create campaign", slog.Any("error", err))

		return nil, domainerrors.ErrCampaignCreationFailed.WrapMessage(err.Error())
	}

	return srv.dispatcher.Dispatch(ctx, campaign)
}

// Schedule persists a campaign for later delivery. No delivery happens here.
func (srv *campaignService) Schedule(ctx context.Context, input *usecase.CampaignInput, scheduledFor time.Time) (*entity.Campaign, error) {
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Missing required fields: user_id")
	}

	if !scheduledFor.After(srv.now()) {
		return nil, domainerrors.ErrScheduleNotInFuture
	}

	campaign := buildCampaign(input, defaultScheduleCampaignName)
	campaign.Status = entity.CampaignStatusScheduled
	campaign.ScheduledFor = &scheduledFor

	if err := srv.campaignRepo.Create(ctx, campaign); err != nil {
		srv.log(ctx).Error("Failed to create scheduled campaign", slog.Any("error", err))

		return nil, domainerrors.ErrCampaignCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Campaign scheduled",
		slog.String("campaign_id", campaign.ID.String()),
		slog.Time("scheduled_for", scheduledFor),
	)

	return campaign, nil
}

// ListByStore returns the store's campaigns, newest first.
func (srv *campaignService) ListByStore(ctx context.Context, storeID string) ([]*entity.Campaign, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("store_id is required")
	}

	campaigns, err := srv.campaignRepo.ListByStore(ctx, storeID)
	if err != nil {
		srv.log(ctx).Error("Failed to list campaigns", slog.String("store_id", storeID), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamRead.WrapMessage("failed to list campaigns")
	}

	return campaigns, nil
}

// ReleaseDue publishes a dispatch event for every due scheduled campaign. Campaigns whose event
// could not be published stay scheduled and are picked up by the next release.
func (srv *campaignService) ReleaseDue(ctx context.Context, limit int) (int, error) {
	if limit <= 0 || limit > srv.releaseBatchSize {
		limit = srv.releaseBatchSize
	}

	due, err := srv.campaignRepo.FindDueScheduled(ctx, srv.now(), limit)
	if err != nil {
		srv.log(ctx).Error("Failed to find due campaigns", slog.Any("error", err))

		return 0, domainerrors.ErrUpstreamRead.WrapMessage("failed to find due campaigns")
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	released := 0
	for _, campaign := range due {
		event := &service.CampaignDispatchEvent{
			RequestID:  requestID,
			CampaignID: campaign.ID.String(),
			StoreID:    campaign.StoreID,
		}
		if campaign.ScheduledFor != nil {
			event.ScheduledFor = campaign.ScheduledFor.UTC().Format(time.RFC3339)
		}

		if err := srv.publisher.PublishCampaignDispatch(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish campaign dispatch event",
				slog.String("campaign_id", event.CampaignID),
				slog.Any("error", err),
			)

			continue
		}
		released++
	}

	srv.log(ctx).Info("Released due campaigns",
		slog.Int("due", len(due)),
		slog.Int("released", released),
	)

	return released, nil
}

// DispatchScheduled loads a scheduled campaign and dispatches it.
func (srv *campaignService) DispatchScheduled(ctx context.Context, campaignID uuid.UUID) (*entity.DispatchResult, error) {
	campaign, err := srv.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}
		srv.log(ctx).Error("Failed to load campaign", slog.String("campaign_id", campaignID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamRead.WrapMessage("failed to load campaign")
	}

	if !campaign.IsScheduled() {
		return nil, domainerrors.ErrCampaignAlreadyDispatched
	}

	return srv.dispatcher.Dispatch(ctx, campaign)
}

// GenerateStoreQR renders the store's subscription QR code.
func (srv *campaignService) GenerateStoreQR(ctx context.Context, storeID string) ([]byte, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("store_id is required")
	}

	png, err := srv.qrcodeSvc.GenerateStoreQR(storeID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate store QR code", slog.String("store_id", storeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func validateCampaignInput(input *usecase.CampaignInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed
	}

	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(input.Body) == "" {
		missing = append(missing, "body")
	}
	if strings.TrimSpace(input.StoreID) == "" {
		missing = append(missing, "store_id")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithMessage("Missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

func buildCampaign(input *usecase.CampaignInput, defaultName string) *entity.Campaign {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultName
	}

	return &entity.Campaign{
		ID:      uuid.New(),
		StoreID: input.StoreID,
		UserID:  input.UserID,
		Name:    name,
		Title:   input.Title,
		Body:    input.Body,
		Icon:    input.Icon,
		URL:     input.URL,
	}
}
