package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the terminal outcome of one delivery attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// DeliveryRecord is the append-only outcome of delivering a campaign to one subscription.
type DeliveryRecord struct {
	ID             uuid.UUID      `json:"id"`                      // The Global Unique Identifier (GUID) for the record.
	CampaignID     uuid.UUID      `json:"campaign_id"`             // The campaign that was delivered.
	SubscriptionID uuid.UUID      `json:"subscription_id"`         // The subscription that was targeted.
	Status         DeliveryStatus `json:"status"`                  // sent or failed.
	ErrorMessage   *string        `json:"error_message,omitempty"` // Failure detail, nil when sent.
	SentAt         time.Time      `json:"sent_at"`                 // Timestamp of the attempt.
}
