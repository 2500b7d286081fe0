package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// (endpoint, store_id) is unique so re-registration updates the existing row.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   string    `gorm:"type:text;not null;uniqueIndex:uq_push_subscriptions_endpoint_store,priority:2;index:idx_push_subscriptions_store_active,priority:1"`
	Endpoint  string    `gorm:"type:text;not null;uniqueIndex:uq_push_subscriptions_endpoint_store,priority:1"`
	P256dh    string    `gorm:"column:p256dh;type:text;not null"`
	Auth      string    `gorm:"type:text;not null"`
	UserAgent *string   `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_push_subscriptions_store_active,priority:2"`
	LastSeen  time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
