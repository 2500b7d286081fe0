package model

import (
	"time"

	"github.com/google/uuid"
)

// PushClickModel is the GORM-specific struct for the append-only 'push_clicks' table.
type PushClickModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubscriptionID *uuid.UUID `gorm:"type:uuid"`
	ClickedAt      time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PushClickModel) TableName() string {
	return "push_clicks"
}
