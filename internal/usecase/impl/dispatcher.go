package impl

import (
	"context"
	"encoding/json"
	"log/slog"
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
	"golang.org/x/sync/errgroup"
)

const noActiveSubscribersMessage = "no active subscribers"

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Config             *config.Config
	Logger             *slog.Logger
	SubscriptionRepo   repository.SubscriptionRepository
	CampaignRepo       repository.CampaignRepository
	DeliveryRecordRepo repository.DeliveryRecordRepository
	Sender             service.PushSender
}

type dispatcher struct {
	logger             *slog.Logger
	subscriptionRepo   repository.SubscriptionRepository
	campaignRepo       repository.CampaignRepository
	deliveryRecordRepo repository.DeliveryRecordRepository
	sender             service.PushSender
	defaults           entity.PushDefaults
	concurrency        int
	deliveryTimeout    time.Duration
	now                func() time.Time
}

// NewDispatcher is the constructor for the campaign fan-out engine.
func NewDispatcher(params DispatcherParams) usecase.Dispatcher {
	return &dispatcher{
		logger:             params.Logger,
		subscriptionRepo:   params.SubscriptionRepo,
		campaignRepo:       params.CampaignRepo,
		deliveryRecordRepo: params.DeliveryRecordRepo,
		sender:             params.Sender,
		defaults: entity.PushDefaults{
			Icon:  params.Config.Push.DefaultIcon,
			Badge: params.Config.Push.DefaultBadge,
			URL:   params.Config.Push.DefaultURL,
		},
		concurrency:     params.Config.Dispatch.Concurrency,
		deliveryTimeout: params.Config.Dispatch.DeliveryTimeout,
		now:             time.Now,
	}
}

func (d *dispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Dispatch delivers the campaign to every active subscriber of its store.
func (d *dispatcher) Dispatch(ctx context.Context, campaign *entity.Campaign) (*entity.DispatchResult, error) {
	if campaign == nil || campaign.Title == "" || campaign.Body == "" || campaign.StoreID == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("title, body and store_id are required")
	}

	logger := d.log(ctx).With(
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("store_id", campaign.StoreID),
	)

	subscriptions, err := d.subscriptionRepo.FindActiveByStore(ctx, campaign.StoreID)
	if err != nil {
		logger.Error("Failed to read active subscriptions", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamRead.WrapMessage("failed to read active subscriptions")
	}

	if campaign.IsScheduled() {
		if err := d.claim(ctx, campaign); err != nil {
			return nil, err
		}
	}

	if len(subscriptions) == 0 {
		d.persistCounts(ctx, logger, campaign, 0, 0)
		logger.Info("Campaign has no active subscribers")

		return &entity.DispatchResult{
			CampaignID: campaign.ID,
			Message:    noActiveSubscribersMessage,
			Records:    []*entity.DeliveryRecord{},
		}, nil
	}

	payload, err := json.Marshal(entity.NewPushMessage(campaign, d.defaults))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode push message")
	}

	startedAt := time.Now()
	records := make([]*entity.DeliveryRecord, len(subscriptions))

	// Tasks never return an error, so the group neither short-circuits nor cancels siblings.
	var group errgroup.Group
	group.SetLimit(d.concurrency)
	for idx, subscription := range subscriptions {
		group.Go(func() error {
			records[idx] = d.deliver(ctx, logger, campaign.ID, subscription, payload)

			return nil
		})
	}
	_ = group.Wait()

	result := &entity.DispatchResult{
		CampaignID: campaign.ID,
		Records:    records,
	}
	for _, record := range records {
		if record.Status == entity.DeliveryStatusSent {
			result.Sent++
		} else {
			result.Failed++
		}
	}
	result.Total = result.Sent + result.Failed

	d.persistCounts(ctx, logger, campaign, result.Sent, result.Failed)

	logger.Info("Campaign dispatched",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("total", result.Total),
		slog.Duration("elapsed", time.Since(startedAt)),
	)

	return result, nil
}

// claim moves a scheduled campaign to sent before any delivery starts.
func (d *dispatcher) claim(ctx context.Context, campaign *entity.Campaign) error {
	sentAt := d.now()
	if err := d.campaignRepo.ClaimScheduled(ctx, campaign.ID, sentAt); err != nil {
		if errors.Is(err, repository.ErrCampaignNotClaimable) {
			return domainerrors.ErrCampaignAlreadyDispatched
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to claim scheduled campaign")
	}

	campaign.Status = entity.CampaignStatusSent
	campaign.SentAt = &sentAt

	return nil
}

// deliver makes exactly one delivery attempt and records its outcome.
func (d *dispatcher) deliver(
	ctx context.Context,
	logger *slog.Logger,
	campaignID uuid.UUID,
	subscription *entity.PushSubscription,
	payload []byte,
) *entity.DeliveryRecord {
	deliveryCtx, cancel := context.WithTimeout(ctx, d.deliveryTimeout)
	defer cancel()

	sendErr := d.sender.Send(deliveryCtx, subscription.Target(), payload)

	record := &entity.DeliveryRecord{
		ID:             uuid.New(),
		CampaignID:     campaignID,
		SubscriptionID: subscription.ID,
		Status:         entity.DeliveryStatusSent,
		SentAt:         d.now(),
	}

	if sendErr != nil {
		detail := d.classifyFailure(ctx, logger, subscription, sendErr, deliveryCtx.Err())
		record.Status = entity.DeliveryStatusFailed
		record.ErrorMessage = &detail
	}

	if err := d.deliveryRecordRepo.Create(ctx, record); err != nil {
		logger.Warn("Failed to persist delivery record",
			slog.String("subscription_id", subscription.ID.String()),
			slog.Any("error", err),
		)
	}

	return record
}

// classifyFailure returns the error detail for a failed delivery and deactivates endpoints the
// push service reported gone.
func (d *dispatcher) classifyFailure(
	ctx context.Context,
	logger *slog.Logger,
	subscription *entity.PushSubscription,
	sendErr error,
	deliveryCtxErr error,
) string {
	var deliveryErr *service.DeliveryError
	if errors.As(sendErr, &deliveryErr) {
		if deliveryErr.EndpointGone() {
			d.deactivate(ctx, logger, subscription, deliveryErr.StatusCode)
		}

		return deliveryErr.Error()
	}

	if errors.Is(sendErr, context.DeadlineExceeded) || errors.Is(deliveryCtxErr, context.DeadlineExceeded) {
		return "timeout: push delivery exceeded " + d.deliveryTimeout.String()
	}

	logger.Debug("Push delivery failed",
		slog.String("subscription_id", subscription.ID.String()),
		slog.Any("error", sendErr),
	)

	return sendErr.Error()
}

func (d *dispatcher) deactivate(ctx context.Context, logger *slog.Logger, subscription *entity.PushSubscription, statusCode int) {
	if err := d.subscriptionRepo.SetActive(ctx, subscription.ID, false); err != nil {
		logger.Warn("Failed to deactivate gone subscription",
			slog.String("subscription_id", subscription.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("Deactivated gone subscription",
		slog.String("subscription_id", subscription.ID.String()),
		slog.Int("status_code", statusCode),
	)
}

func (d *dispatcher) persistCounts(ctx context.Context, logger *slog.Logger, campaign *entity.Campaign, sent, failed int) {
	campaign.SentCount = sent
	campaign.FailedCount = failed

	if err := d.campaignRepo.UpdateCounts(ctx, campaign.ID, sent, failed); err != nil {
		logger.Warn("Failed to persist campaign counts",
			slog.Int("sent", sent),
			slog.Int("failed", failed),
			slog.Any("error", err),
		)
	}
}
