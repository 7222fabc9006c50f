package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/infrastructure/models"
	"refgate.backend/pkg/utils"
)

var completedStatuses = []string{
	string(entities.ConversionStatusCounted),
	string(entities.ConversionStatusCapped),
}

// ConversionRepository implements conversion record storage
type ConversionRepository struct {
	db *gorm.DB
}

// NewConversionRepository creates a new conversion repository
func NewConversionRepository(db *gorm.DB) *ConversionRepository {
	return &ConversionRepository{db: db}
}

// Create persists a conversion record. The unique index on referral_id
// turns a duplicate delivery, concurrent or not, into ErrAlreadyExists.
func (r *ConversionRepository) Create(ctx context.Context, record *entities.ConversionRecord) error {
	m := &models.ConversionRecord{
		ID:             utils.GenerateUUIDv7(),
		ReferralID:     record.ReferralID,
		ReferrerWallet: record.ReferrerWallet,
		AffiliateID:    record.AffiliateID,
		Status:         string(record.Status),
		ConvertedAt:    record.ConvertedAt,
		ProcessedAt:    record.ProcessedAt,
	}
	if record.Reason.Valid {
		m.Reason = &record.Reason.String
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByReferralID returns the record for an external referral id
func (r *ConversionRepository) GetByReferralID(ctx context.Context, referralID string) (*entities.ConversionRecord, error) {
	var m models.ConversionRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("referral_id = ?", referralID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toConversionRecord(&m), nil
}

// CountCompletedByReferrer counts COUNTED and CAPPED records for a
// referrer. This is the raw completed-referrals metric; it is not capped.
func (r *ConversionRepository) CountCompletedByReferrer(ctx context.Context, referrerWallet string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ConversionRecord{}).
		Where("referrer_wallet = ? AND status IN ?", referrerWallet, completedStatuses).
		Count(&count).Error
	return count, err
}

// ListByReferrer returns a page of records for a referrer, newest first
func (r *ConversionRepository) ListByReferrer(ctx context.Context, referrerWallet string, offset, limit int) ([]*entities.ConversionRecord, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.ConversionRecord{}).
		Where("referrer_wallet = ?", referrerWallet)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("processed_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.ConversionRecord
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*entities.ConversionRecord, 0, len(ms))
	for i := range ms {
		records = append(records, toConversionRecord(&ms[i]))
	}
	return records, total, nil
}

func toConversionRecord(m *models.ConversionRecord) *entities.ConversionRecord {
	rec := &entities.ConversionRecord{
		ReferralID:     m.ReferralID,
		ReferrerWallet: m.ReferrerWallet,
		AffiliateID:    m.AffiliateID,
		Status:         entities.ConversionStatus(m.Status),
		ConvertedAt:    m.ConvertedAt,
		ProcessedAt:    m.ProcessedAt,
	}
	if m.Reason != nil {
		rec.Reason = null.StringFrom(*m.Reason)
	}
	return rec
}
