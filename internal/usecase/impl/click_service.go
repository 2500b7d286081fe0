package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pushcampaign/internal/delivery/context"
	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/errors"
	"pushcampaign/internal/usecase"

	"github.com/google/uuid"
)

type clickService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewClickService creates a new click tracking service instance
func NewClickService(logger *slog.Logger, txManager repository.TransactionManager) usecase.ClickUsecase {
	return &clickService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// TrackClick appends a click event and atomically increments the campaign's click count in one
// transaction, so the counter always equals the number of stored click rows.
func (s *clickService) TrackClick(ctx context.Context, campaignID uuid.UUID, subscriptionID *uuid.UUID) (int, error) {
	if campaignID == uuid.Nil {
		return 0, domainerrors.ErrValidationFailed.WithMessage("Missing required fields: campaign_id")
	}

	var clickCount int
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		click := &entity.ClickEvent{
			ID:             uuid.New(),
			CampaignID:     campaignID,
			SubscriptionID: subscriptionID,
			ClickedAt:      s.now(),
		}
		if err := factory.NewClickRepository().Create(ctx, click); err != nil {
			return err
		}

		count, err := factory.NewCampaignRepository().IncrementClickCount(ctx, campaignID)
		if err != nil {
			return err
		}
		clickCount = count

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return 0, domainerrors.ErrCampaignNotFound
		}
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to track click",
			slog.String("campaign_id", campaignID.String()),
			slog.Any("error", err),
		)

		return 0, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return clickCount, nil
}
