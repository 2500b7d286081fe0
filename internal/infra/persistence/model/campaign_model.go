package model

import (
	"time"

	"github.com/google/uuid"
)

// PushCampaignModel is the GORM-specific struct for the 'push_campaigns' table.
type PushCampaignModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID      string     `gorm:"type:text;not null;index:idx_push_campaigns_store_created,priority:1"`
	UserID       string     `gorm:"type:text"`
	Name         string     `gorm:"type:text;not null"`
	Title        string     `gorm:"type:text;not null"`
	Body         string     `gorm:"type:text;not null"`
	Icon         *string    `gorm:"type:text"`
	URL          *string    `gorm:"column:url;type:text"`
	Status       string     `gorm:"type:text;not null;index:idx_push_campaigns_status_scheduled,priority:1"`
	ScheduledFor *time.Time `gorm:"index:idx_push_campaigns_status_scheduled,priority:2"`
	SentAt       *time.Time
	SentCount    int        `gorm:"not null;default:0;check:sent_count >= 0"`
	FailedCount  int        `gorm:"not null;default:0;check:failed_count >= 0"`
	ClickCount   int        `gorm:"not null;default:0;check:click_count >= 0"`
	CreatedAt    time.Time  `gorm:"index:idx_push_campaigns_store_created,priority:2,sort:desc"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushCampaignModel) TableName() string {
	return "push_campaigns"
}
