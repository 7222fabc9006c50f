package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/infrastructure/models"
	"refgate.backend/pkg/utils"
)

// AttributionRepository implements attribution record storage
type AttributionRepository struct {
	db *gorm.DB
}

// NewAttributionRepository creates a new attribution repository
func NewAttributionRepository(db *gorm.DB) *AttributionRepository {
	return &AttributionRepository{db: db}
}

// Create persists a referee→referrer binding. The unique index on the
// referee wallet enforces first-wins under concurrent binds.
func (r *AttributionRepository) Create(ctx context.Context, record *entities.AttributionRecord) error {
	m := &models.AttributionRecord{
		ID:             utils.GenerateUUIDv7(),
		RefereeWallet:  record.RefereeWallet,
		ReferrerWallet: record.ReferrerWallet,
		AffiliateID:    record.AffiliateID,
		BoundAt:        record.BoundAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByReferee returns the attribution record for a referee wallet
func (r *AttributionRepository) GetByReferee(ctx context.Context, refereeWallet string) (*entities.AttributionRecord, error) {
	var m models.AttributionRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("referee_wallet = ?", refereeWallet).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.AttributionRecord{
		RefereeWallet:  m.RefereeWallet,
		ReferrerWallet: m.ReferrerWallet,
		AffiliateID:    m.AffiliateID,
		BoundAt:        m.BoundAt,
	}, nil
}
