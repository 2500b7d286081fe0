package repository

import (
	"context"
	"time"

	"pushcampaign/internal/domain/entity"
	"pushcampaign/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for campaign persistence.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrCampaignNotClaimable is returned when a scheduled campaign was already claimed for dispatch.
	ErrCampaignNotClaimable = errors.New("campaign is not in scheduled state")
)

// CampaignRepository is the campaign record store.
type CampaignRepository interface {
	// Create persists a new campaign and fills in generated values.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// FindByID retrieves a campaign by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// ListByStore returns the store's campaigns, newest first.
	ListByStore(ctx context.Context, storeID string) ([]*entity.Campaign, error)

	// FindDueScheduled returns scheduled campaigns whose scheduled_for is not after now, oldest first.
	FindDueScheduled(ctx context.Context, now time.Time, limit int) ([]*entity.Campaign, error)

	// ClaimScheduled atomically moves a scheduled campaign to sent with the given sent_at.
	// Returns ErrCampaignNotClaimable when the campaign is no longer scheduled.
	ClaimScheduled(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	// UpdateCounts writes the aggregate delivery counts of a dispatch.
	UpdateCounts(ctx context.Context, id uuid.UUID, sentCount, failedCount int) error

	// IncrementClickCount atomically adds one click and returns the new total.
	IncrementClickCount(ctx context.Context, id uuid.UUID) (int, error)
}
