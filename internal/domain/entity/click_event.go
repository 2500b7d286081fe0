package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClickEvent records one click on a delivered notification.
type ClickEvent struct {
	ID             uuid.UUID  `json:"id"`
	CampaignID     uuid.UUID  `json:"campaign_id"`
	SubscriptionID *uuid.UUID `json:"subscription_id,omitempty"` // Unknown when the click came from an anonymous client.
	ClickedAt      time.Time  `json:"clicked_at"`
}
