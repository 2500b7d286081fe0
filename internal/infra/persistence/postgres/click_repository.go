package postgres

import (
	"context"

	"pushcampaign/internal/domain/entity"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clickRepository implements the repository.ClickRepository interface.
type clickRepository struct {
	db *gorm.DB
}

// NewClickRepository is the constructor for clickRepository.
func NewClickRepository(db *gorm.DB) repository.ClickRepository {
	return &clickRepository{
		db: db,
	}
}

// Create appends one click event.
func (repo *clickRepository) Create(ctx context.Context, click *entity.ClickEvent) error {
	clickM := &model.PushClickModel{
		ID:             click.ID,
		CampaignID:     click.CampaignID,
		SubscriptionID: click.SubscriptionID,
		ClickedAt:      click.ClickedAt,
	}

	if err := repo.db.WithContext(ctx).Create(clickM).Error; err != nil {
		// push_clicks.campaign_id references push_campaigns(id)
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCampaignNotFound
		}

		return errors.Wrap(err, "failed to create click event")
	}

	click.ID = clickM.ID

	return nil
}
