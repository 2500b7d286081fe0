package postgres

import (
	"context"

	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// deliveryRecordRepository implements the repository.DeliveryRecordRepository interface.
type deliveryRecordRepository struct {
	db *gorm.DB
}

// NewDeliveryRecordRepository is the constructor for deliveryRecordRepository.
func NewDeliveryRecordRepository(db *gorm.DB) repository.DeliveryRecordRepository {
	return &deliveryRecordRepository{
		db: db,
	}
}

// Create appends one delivery record.
func (repo *deliveryRecordRepository) Create(ctx context.Context, record *entity.DeliveryRecord) error {
	recordM := fromDeliveryRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("invalid campaign or subscription reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery record")
	}

	record.ID = recordM.ID

	return nil
}

// fromDeliveryRecordDomain converts a domain DeliveryRecord entity to a GORM PushSendModel.
func fromDeliveryRecordDomain(data *entity.DeliveryRecord) *model.PushSendModel {
	if data == nil {
		return nil
	}

	return &model.PushSendModel{
		ID:             data.ID,
		CampaignID:     data.CampaignID,
		SubscriptionID: data.SubscriptionID,
		Status:         string(data.Status),
		ErrorMessage:   data.ErrorMessage,
		SentAt:         data.SentAt,
	}
}
