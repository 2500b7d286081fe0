package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ClickUsecase defines the interface for notification click tracking
type ClickUsecase interface {
	// TrackClick records a click on a campaign and returns the campaign's new click count
	TrackClick(ctx context.Context, campaignID uuid.UUID, subscriptionID *uuid.UUID) (int, error)
}
