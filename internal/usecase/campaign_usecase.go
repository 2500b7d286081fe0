package usecase

import (
	"context"
	"time"

	"pushcampaign/internal/domain/entity"

	"github.com/google/uuid"
)

// CampaignInput represents the content and targeting of a new campaign
type CampaignInput struct {
	StoreID string
	UserID  string
	Name    string
	Title   string
	Body    string
	Icon    *string
	URL     *string
}

// CampaignUsecase defines the interface for campaign management use cases
type CampaignUsecase interface {
	// Send creates a campaign and dispatches it immediately
	Send(ctx context.Context, input *CampaignInput) (*entity.DispatchResult, error)

	// Schedule persists a campaign for delivery at scheduledFor, which must be in the future
	Schedule(ctx context.Context, input *CampaignInput, scheduledFor time.Time) (*entity.Campaign, error)

	// ListByStore returns the store's campaigns, newest first
	ListByStore(ctx context.Context, storeID string) ([]*entity.Campaign, error)

	// ReleaseDue publishes a dispatch event for every scheduled campaign that is due and returns how many were published
	ReleaseDue(ctx context.Context, limit int) (int, error)

	// DispatchScheduled loads a scheduled campaign and dispatches it
	DispatchScheduled(ctx context.Context, campaignID uuid.UUID) (*entity.DispatchResult, error)

	// GenerateStoreQR renders the store's subscription QR code
	GenerateStoreQR(ctx context.Context, storeID string) ([]byte, error)
}
