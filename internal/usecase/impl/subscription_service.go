package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pushcampaign/internal/delivery/context"
	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/usecase"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
	now              func() time.Time
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	logger *slog.Logger,
	subscriptionRepo repository.SubscriptionRepository,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Register creates the subscription or refreshes the existing one for the same (endpoint, store).
// The repository performs the upsert atomically, so concurrent registrations converge on one row.
func (s *subscriptionService) Register(ctx context.Context, input *usecase.SubscriptionInput) (*usecase.RegistrationResult, error) {
	if err := validateSubscriptionInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	subscription := &entity.PushSubscription{
		StoreID:   input.StoreID,
		Endpoint:  input.Endpoint,
		P256dh:    input.P256dh,
		Auth:      input.Auth,
		UserAgent: input.UserAgent,
		IsActive:  true,
		LastSeen:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.subscriptionRepo.Upsert(ctx, subscription)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to register subscription",
			slog.String("store_id", input.StoreID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSubscriptionRegistrationFailed.WrapMessage(err.Error())
	}

	return &usecase.RegistrationResult{
		SubscriptionID: subscription.ID,
		Created:        created,
	}, nil
}

func validateSubscriptionInput(input *usecase.SubscriptionInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed
	}

	var missing []string
	if strings.TrimSpace(input.Endpoint) == "" {
		missing = append(missing, "endpoint")
	}
	if strings.TrimSpace(input.P256dh) == "" {
		missing = append(missing, "p256dh")
	}
	if strings.TrimSpace(input.Auth) == "" {
		missing = append(missing, "auth")
	}
	if strings.TrimSpace(input.StoreID) == "" {
		missing = append(missing, "store_id")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithMessage("Missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}
