package usecase

import (
	"context"

	"pushcampaign/internal/domain/entity"
)

// Dispatcher fans a campaign out to every active subscriber of its store.
type Dispatcher interface {
	// Dispatch delivers campaign to the store's active subscriptions, records one outcome per
	// subscription and persists the aggregate counts. Only a failed upfront read is returned as an
	// error; per-recipient failures are data in the result.
	Dispatch(ctx context.Context, campaign *entity.Campaign) (*entity.DispatchResult, error)
}
