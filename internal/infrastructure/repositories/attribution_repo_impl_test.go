package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
)

func TestAttributionRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createAttributionRecordTable(t, db)
	repo := NewAttributionRepository(db)
	ctx := context.Background()

	record := &entities.AttributionRecord{
		RefereeWallet:  "0xreferee",
		ReferrerWallet: "0xreferrer",
		AffiliateID:    "aff-1",
		BoundAt:        time.Now(),
	}
	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByReferee(ctx, "0xreferee")
	require.NoError(t, err)
	require.Equal(t, "0xreferrer", got.ReferrerWallet)
	require.Equal(t, "aff-1", got.AffiliateID)
}

func TestAttributionRepository_FirstWins(t *testing.T) {
	db := newTestDB(t)
	createAttributionRecordTable(t, db)
	repo := NewAttributionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.AttributionRecord{
		RefereeWallet: "0xreferee", ReferrerWallet: "0xreferrer", AffiliateID: "aff-1", BoundAt: time.Now(),
	}))

	// A second bind for the same referee loses, whatever the referrer.
	require.ErrorIs(t, repo.Create(ctx, &entities.AttributionRecord{
		RefereeWallet: "0xreferee", ReferrerWallet: "0xother", AffiliateID: "aff-2", BoundAt: time.Now(),
	}), domainerrors.ErrAlreadyExists)

	got, err := repo.GetByReferee(ctx, "0xreferee")
	require.NoError(t, err)
	require.Equal(t, "aff-1", got.AffiliateID)
}

func TestAttributionRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createAttributionRecordTable(t, db)
	repo := NewAttributionRepository(db)

	_, err := repo.GetByReferee(context.Background(), "0xnobody")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
