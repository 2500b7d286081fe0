package service

import (
	"context"
)

// CampaignDispatchEvent asks a dispatch worker to deliver a due scheduled campaign.
type CampaignDispatchEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	CampaignID   string `json:"campaign_id"`
	StoreID      string `json:"store_id"`
	ScheduledFor string `json:"scheduled_for,omitempty"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCampaignDispatch publishes a dispatch event for async processing
	PublishCampaignDispatch(ctx context.Context, event *CampaignDispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
