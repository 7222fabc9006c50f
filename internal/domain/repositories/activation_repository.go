package repositories

import (
	"context"

	"refgate.backend/internal/domain/entities"
)

// ActivationRepository persists wallet activation records.
type ActivationRepository interface {
	// Upsert is idempotent: re-activating an already activated wallet
	// keeps the original record.
	Upsert(ctx context.Context, record *entities.ActivationRecord) error
	GetByWallet(ctx context.Context, wallet string) (*entities.ActivationRecord, error)
}
