package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSendModel is the GORM-specific struct for the append-only 'push_sends' table.
// It represents the outcome of delivering one campaign to one subscription.
type PushSendModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:text;not null"`
	ErrorMessage   *string   `gorm:"type:text"`
	SentAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PushSendModel) TableName() string {
	return "push_sends"
}
