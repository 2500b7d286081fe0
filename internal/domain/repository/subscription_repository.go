// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pushcampaign/internal/domain/entity"
	"pushcampaign/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository is the subscriber directory: push endpoints registered per store.
type SubscriptionRepository interface {
	// FindActiveByStore returns every subscription of the store with is_active = true.
	FindActiveByStore(ctx context.Context, storeID string) ([]*entity.PushSubscription, error)

	// Upsert inserts the subscription or, when (endpoint, store_id) already exists, refreshes its keys,
	// user agent and last_seen and reactivates it. It reports whether a new row was created and fills
	// in the persisted ID.
	Upsert(ctx context.Context, subscription *entity.PushSubscription) (created bool, err error)

	// SetActive flips the active flag of a subscription.
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
}
