package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SubscriptionInput represents a browser push subscription to register
type SubscriptionInput struct {
	StoreID   string
	Endpoint  string
	P256dh    string
	Auth      string
	UserAgent *string
}

// RegistrationResult reports the registered subscription and whether it was newly created
type RegistrationResult struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Created        bool      `json:"created"`
}

// SubscriptionUsecase defines the interface for subscription registration
type SubscriptionUsecase interface {
	// Register creates the subscription or refreshes the existing one for the same (endpoint, store)
	Register(ctx context.Context, input *SubscriptionInput) (*RegistrationResult, error)
}
