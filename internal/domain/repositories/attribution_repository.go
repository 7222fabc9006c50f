package repositories

import (
	"context"

	"refgate.backend/internal/domain/entities"
)

// AttributionRepository persists referee→referrer bindings. Records are
// keyed by referee wallet (unique) and never updated or deleted.
type AttributionRepository interface {
	// Create returns ErrAlreadyExists if the referee already has a record.
	Create(ctx context.Context, record *entities.AttributionRecord) error
	GetByReferee(ctx context.Context, refereeWallet string) (*entities.AttributionRecord, error)
}
