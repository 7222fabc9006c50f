package repositories

import (
	"context"

	"refgate.backend/internal/domain/entities"
)

// AffiliateRepository persists wallet→affiliate-id bindings. Both columns
// are unique; Create returns ErrAlreadyExists on either collision so a
// racing second issuance can re-read the winner.
type AffiliateRepository interface {
	Create(ctx context.Context, binding *entities.AffiliateBinding) error
	GetByWallet(ctx context.Context, wallet string) (*entities.AffiliateBinding, error)
	GetByAffiliateID(ctx context.Context, affiliateID string) (*entities.AffiliateBinding, error)
}
