package postgres

import (
	"context"
	"time"

	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// upsertSubscriptionSQL relies on uq_push_subscriptions_endpoint_store. xmax is zero only for a
// freshly inserted tuple, which tells a create apart from an update in one round trip.
const upsertSubscriptionSQL = `
	INSERT INTO push_subscriptions
		(store_id, endpoint, p256dh, auth, user_agent, is_active, last_seen, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, true, ?, ?, ?)
	ON CONFLICT (endpoint, store_id) DO UPDATE SET
		p256dh     = EXCLUDED.p256dh,
		auth       = EXCLUDED.auth,
		user_agent = EXCLUDED.user_agent,
		is_active  = true,
		last_seen  = EXCLUDED.last_seen,
		updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, (xmax = 0) AS inserted
`

type upsertSubscriptionRow struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Inserted  bool
}

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindActiveByStore returns every active subscription of the store.
func (repo *subscriptionRepository) FindActiveByStore(ctx context.Context, storeID string) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND is_active = ?", storeID, true).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by store")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// Upsert inserts or refreshes the subscription identified by (endpoint, store_id).
func (repo *subscriptionRepository) Upsert(ctx context.Context, subscription *entity.PushSubscription) (bool, error) {
	var row upsertSubscriptionRow

	err := repo.db.WithContext(ctx).
		Raw(upsertSubscriptionSQL,
			subscription.StoreID,
			subscription.Endpoint,
			subscription.P256dh,
			subscription.Auth,
			subscription.UserAgent,
			subscription.LastSeen,
			subscription.CreatedAt,
			subscription.UpdatedAt,
		).
		Scan(&row).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	subscription.ID = row.ID
	subscription.CreatedAt = row.CreatedAt
	subscription.IsActive = true

	return row.Inserted, nil
}

// SetActive updates the active status of a subscription.
func (repo *subscriptionRepository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  isActive,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM PushSubscriptionModel to a domain PushSubscription entity.
func toSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		UserAgent: data.UserAgent,
		IsActive:  data.IsActive,
		LastSeen:  data.LastSeen,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
