package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/infrastructure/models"
	"refgate.backend/pkg/utils"
)

// ActivationRepository implements activation record storage
type ActivationRepository struct {
	db *gorm.DB
}

// NewActivationRepository creates a new activation repository
func NewActivationRepository(db *gorm.DB) *ActivationRepository {
	return &ActivationRepository{db: db}
}

// Upsert records a successful activation. A wallet that is already
// activated keeps its original record; re-activation never duplicates.
func (r *ActivationRepository) Upsert(ctx context.Context, record *entities.ActivationRecord) error {
	m := &models.ActivationRecord{
		ID:            utils.GenerateUUIDv7(),
		WalletAddress: record.WalletAddress,
		ActivatedAt:   record.ActivatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet_address"}},
			DoNothing: true,
		}).
		Create(m).Error
}

// GetByWallet returns the activation record for a wallet
func (r *ActivationRepository) GetByWallet(ctx context.Context, wallet string) (*entities.ActivationRecord, error) {
	var m models.ActivationRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("wallet_address = ?", wallet).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.ActivationRecord{
		WalletAddress: m.WalletAddress,
		ActivatedAt:   m.ActivatedAt,
	}, nil
}
