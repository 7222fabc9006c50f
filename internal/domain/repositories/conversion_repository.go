package repositories

import (
	"context"

	"refgate.backend/internal/domain/entities"
)

// ConversionRepository persists completion-event records keyed by the
// external referral id. The unique constraint on referral_id is the
// idempotency guarantee for concurrent webhook deliveries.
type ConversionRepository interface {
	// Create returns ErrAlreadyExists when the referral id was already
	// recorded (including a concurrent insert losing the race).
	Create(ctx context.Context, record *entities.ConversionRecord) error
	GetByReferralID(ctx context.Context, referralID string) (*entities.ConversionRecord, error)
	// CountCompletedByReferrer counts COUNTED and CAPPED records, the raw
	// completed-referrals metric.
	CountCompletedByReferrer(ctx context.Context, referrerWallet string) (int64, error)
	// ListByReferrer returns records for one referrer, newest first.
	ListByReferrer(ctx context.Context, referrerWallet string, offset, limit int) ([]*entities.ConversionRecord, int64, error)
}
