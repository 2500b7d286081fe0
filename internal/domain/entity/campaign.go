package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSent      CampaignStatus = "sent"
)

// Campaign is one notification send or schedule targeted at every active subscriber of a store.
type Campaign struct {
	ID           uuid.UUID      `json:"id"`                      // The Global Unique Identifier (GUID) for the campaign.
	StoreID      string         `json:"store_id"`                // The store whose subscribers receive the campaign.
	UserID       string         `json:"user_id"`                 // The operator who created the campaign.
	Name         string         `json:"name"`                    // Display name shown in campaign history.
	Title        string         `json:"title"`                   // Notification title.
	Body         string         `json:"body"`                    // Notification body.
	Icon         *string        `json:"icon,omitempty"`          // Optional icon URL.
	URL          *string        `json:"url,omitempty"`           // Optional URL opened on click.
	Status       CampaignStatus `json:"status"`                  // scheduled or sent.
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"` // Delivery time for scheduled campaigns.
	SentAt       *time.Time     `json:"sent_at,omitempty"`       // Timestamp of dispatch.
	SentCount    int            `json:"sent_count"`              // Deliveries accepted by the push service.
	FailedCount  int            `json:"failed_count"`            // Deliveries that failed.
	ClickCount   int            `json:"click_count"`             // Recorded notification clicks.
	CreatedAt    time.Time      `json:"created_at"`              // Timestamp of when this record was created.
	UpdatedAt    time.Time      `json:"updated_at"`              // Timestamp of the last modification.
}

// IsScheduled reports whether the campaign still waits for dispatch.
func (c *Campaign) IsScheduled() bool {
	return c.Status == CampaignStatusScheduled
}

// DispatchResult is the aggregate outcome of one dispatch.
type DispatchResult struct {
	CampaignID uuid.UUID         `json:"campaign_id"`
	Sent       int               `json:"sent"`
	Failed     int               `json:"failed"`
	Total      int               `json:"total"`
	Message    string            `json:"message,omitempty"`
	Records    []*DeliveryRecord `json:"-"` // Per-recipient outcomes in subscriber order.
}
