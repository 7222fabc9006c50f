package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/infrastructure/models"
	"refgate.backend/pkg/utils"
)

// NonceRepository implements challenge nonce storage
type NonceRepository struct {
	db *gorm.DB
}

// NewNonceRepository creates a new nonce repository
func NewNonceRepository(db *gorm.DB) *NonceRepository {
	return &NonceRepository{db: db}
}

// Create persists a freshly issued nonce
func (r *NonceRepository) Create(ctx context.Context, nonce *entities.Nonce) error {
	m := &models.Nonce{
		ID:        utils.GenerateUUIDv7(),
		Value:     nonce.Value,
		IssuedAt:  nonce.IssuedAt,
		ExpiresAt: nonce.ExpiresAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Consume deletes the nonce in a single conditional statement. The
// RowsAffected check is what makes consumption single-shot: of two
// concurrent consumers only one sees a deleted row, the other gets
// ErrNonceInvalid. Expiry is reported only after the row is gone so a
// failed signature check can never retry with a stale nonce.
func (r *NonceRepository) Consume(ctx context.Context, value string) (*entities.Nonce, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.Nonce
	if err := db.Where("value = ?", value).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNonceInvalid
		}
		return nil, err
	}

	res := db.Where("value = ?", value).Delete(&models.Nonce{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race to another consumer.
		return nil, domainerrors.ErrNonceInvalid
	}

	nonce := &entities.Nonce{
		Value:     m.Value,
		IssuedAt:  m.IssuedAt,
		ExpiresAt: m.ExpiresAt,
	}
	if nonce.Expired(time.Now()) {
		return nil, domainerrors.ErrNonceExpired
	}
	return nonce, nil
}

// DeleteExpired removes nonces past their expiry, returning the number swept
func (r *NonceRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res := GetDB(ctx, r.db).WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&models.Nonce{})
	return res.RowsAffected, res.Error
}
