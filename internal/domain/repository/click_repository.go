package repository

import (
	"context"

	"pushcampaign/internal/domain/entity"
)

// ClickRepository appends notification click events.
type ClickRepository interface {
	// Create appends one click event.
	Create(ctx context.Context, click *entity.ClickEvent) error
}
