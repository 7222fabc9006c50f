package repositories

import (
	"context"
	"time"

	"refgate.backend/internal/domain/entities"
)

// NonceRepository stores single-use challenge nonces. Consume must be
// atomic: two concurrent calls for the same value may see at most one
// success, backed by a conditional delete in the persistence layer.
type NonceRepository interface {
	Create(ctx context.Context, nonce *entities.Nonce) error
	// Consume deletes the nonce and returns it. The nonce is gone after
	// this call whether or not the caller's signature check later passes.
	// Absent value → ErrNonceInvalid; past expiry → ErrNonceExpired.
	Consume(ctx context.Context, value string) (*entities.Nonce, error)
	// DeleteExpired removes nonces whose expiry is before the cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
