package repository

import (
	"context"

	"pushcampaign/internal/domain/entity"
)

// DeliveryRecordRepository appends per-recipient delivery outcomes.
type DeliveryRecordRepository interface {
	// Create appends one delivery record.
	Create(ctx context.Context, record *entity.DeliveryRecord) error
}
