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

// AffiliateRepository implements affiliate binding storage
type AffiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository creates a new affiliate repository
func NewAffiliateRepository(db *gorm.DB) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

// Create persists a new wallet→affiliate binding
func (r *AffiliateRepository) Create(ctx context.Context, binding *entities.AffiliateBinding) error {
	m := &models.AffiliateBinding{
		ID:            utils.GenerateUUIDv7(),
		WalletAddress: binding.WalletAddress,
		AffiliateID:   binding.AffiliateID,
		ReferralLink:  binding.ReferralLink,
		CreatedAt:     binding.CreatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByWallet returns the binding owned by a wallet
func (r *AffiliateRepository) GetByWallet(ctx context.Context, wallet string) (*entities.AffiliateBinding, error) {
	var m models.AffiliateBinding
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("wallet_address = ?", wallet).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAffiliateBinding(&m), nil
}

// GetByAffiliateID resolves an affiliate id back to its binding
func (r *AffiliateRepository) GetByAffiliateID(ctx context.Context, affiliateID string) (*entities.AffiliateBinding, error) {
	var m models.AffiliateBinding
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("affiliate_id = ?", affiliateID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAffiliateBinding(&m), nil
}

func toAffiliateBinding(m *models.AffiliateBinding) *entities.AffiliateBinding {
	return &entities.AffiliateBinding{
		WalletAddress: m.WalletAddress,
		AffiliateID:   m.AffiliateID,
		ReferralLink:  m.ReferralLink,
		CreatedAt:     m.CreatedAt,
	}
}
