package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
)

func TestActivationRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createActivationRecordTable(t, db)
	repo := NewActivationRepository(db)
	ctx := context.Background()

	first := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, repo.Upsert(ctx, &entities.ActivationRecord{
		WalletAddress: "0xwallet",
		ActivatedAt:   first,
	}))

	// Re-activation keeps the original record.
	require.NoError(t, repo.Upsert(ctx, &entities.ActivationRecord{
		WalletAddress: "0xwallet",
		ActivatedAt:   time.Now(),
	}))

	got, err := repo.GetByWallet(ctx, "0xwallet")
	require.NoError(t, err)
	require.Equal(t, "0xwallet", got.WalletAddress)
	require.WithinDuration(t, first, got.ActivatedAt, time.Second)

	var count int64
	require.NoError(t, db.Table("activation_records").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestActivationRepository_GetByWalletNotFound(t *testing.T) {
	db := newTestDB(t)
	createActivationRecordTable(t, db)
	repo := NewActivationRepository(db)

	_, err := repo.GetByWallet(context.Background(), "0xnobody")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
