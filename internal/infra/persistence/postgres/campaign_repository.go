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
	"gorm.io/gorm/clause"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// Create persists a new campaign.
func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCampaignCreationFailed.WrapMessage("missing required campaign information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrCampaignCreationFailed.WrapMessage("campaign counters must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	// Update the entity with generated values
	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindByID retrieves a campaign by its unique ID.
func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.PushCampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// ListByStore returns the store's campaigns, newest first.
func (repo *campaignRepository) ListByStore(ctx context.Context, storeID string) ([]*entity.Campaign, error) {
	var campaignModels []*model.PushCampaignModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns by store")
	}

	return toCampaignDomains(campaignModels), nil
}

// FindDueScheduled returns scheduled campaigns that are due, oldest first.
func (repo *campaignRepository) FindDueScheduled(ctx context.Context, now time.Time, limit int) ([]*entity.Campaign, error) {
	var campaignModels []*model.PushCampaignModel

	query := repo.db.WithContext(ctx).
		Where("status = ? AND scheduled_for <= ?", string(entity.CampaignStatusScheduled), now).
		Order("scheduled_for ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due scheduled campaigns")
	}

	return toCampaignDomains(campaignModels), nil
}

// ClaimScheduled moves a scheduled campaign to sent. The status predicate makes the transition
// happen at most once even when several workers receive the same dispatch event.
func (repo *campaignRepository) ClaimScheduled(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushCampaignModel{}).
		Where("id = ? AND status = ?", id, string(entity.CampaignStatusScheduled)).
		Updates(map[string]any{
			"status":     string(entity.CampaignStatusSent),
			"sent_at":    sentAt,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim scheduled campaign")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotClaimable
	}

	return nil
}

// UpdateCounts writes the aggregate delivery counts of a dispatch.
func (repo *campaignRepository) UpdateCounts(ctx context.Context, id uuid.UUID, sentCount, failedCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushCampaignModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sent_count":   sentCount,
			"failed_count": failedCount,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update campaign counts")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// IncrementClickCount adds one click in a single UPDATE and returns the new total.
func (repo *campaignRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) (int, error) {
	var campaignM model.PushCampaignModel

	result := repo.db.WithContext(ctx).
		Model(&campaignM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "click_count"}}}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment click count")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrCampaignNotFound
	}

	return campaignM.ClickCount, nil
}

// --- Mapper Functions ---

func toCampaignDomains(campaignModels []*model.PushCampaignModel) []*entity.Campaign {
	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns
}

// toCampaignDomain converts a GORM PushCampaignModel to a domain Campaign entity.
func toCampaignDomain(data *model.PushCampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:           data.ID,
		StoreID:      data.StoreID,
		UserID:       data.UserID,
		Name:         data.Name,
		Title:        data.Title,
		Body:         data.Body,
		Icon:         data.Icon,
		URL:          data.URL,
		Status:       entity.CampaignStatus(data.Status),
		ScheduledFor: data.ScheduledFor,
		SentAt:       data.SentAt,
		SentCount:    data.SentCount,
		FailedCount:  data.FailedCount,
		ClickCount:   data.ClickCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCampaignDomain converts a domain Campaign entity to a GORM PushCampaignModel.
func fromCampaignDomain(data *entity.Campaign) *model.PushCampaignModel {
	if data == nil {
		return nil
	}

	return &model.PushCampaignModel{
		ID:           data.ID,
		StoreID:      data.StoreID,
		UserID:       data.UserID,
		Name:         data.Name,
		Title:        data.Title,
		Body:         data.Body,
		Icon:         data.Icon,
		URL:          data.URL,
		Status:       string(data.Status),
		ScheduledFor: data.ScheduledFor,
		SentAt:       data.SentAt,
		SentCount:    data.SentCount,
		FailedCount:  data.FailedCount,
		ClickCount:   data.ClickCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
