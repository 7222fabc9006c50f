package usecases

import (
	"context"

	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/domain/repositories"
	"refgate.backend/pkg/crypto"
	"refgate.backend/pkg/utils"
)

// ProgressUsecase serves the read-only referral views. It only reads
// state already committed by the completion processor; it never computes
// or mutates referral state itself.
type ProgressUsecase struct {
	conversionRepo repositories.ConversionRepository
}

// NewProgressUsecase creates a new progress usecase
func NewProgressUsecase(conversionRepo repositories.ConversionRepository) *ProgressUsecase {
	return &ProgressUsecase{conversionRepo: conversionRepo}
}

// GetProgress returns the completed-referral count and derived
// multiplier for a referrer wallet.
func (u *ProgressUsecase) GetProgress(ctx context.Context, wallet string) (*entities.ReferralProgress, error) {
	normalized, ok := crypto.NormalizeAddress(wallet)
	if !ok {
		return nil, domainerrors.ErrInvalidInput
	}

	count, err := u.conversionRepo.CountCompletedByReferrer(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return &entities.ReferralProgress{
		WalletAddress:      normalized,
		CompletedReferrals: count,
		Multiplier:         CalculateMultiplier(count),
	}, nil
}

// ListConversions returns a page of the referrer's conversion audit trail
func (u *ProgressUsecase) ListConversions(ctx context.Context, wallet string, page, limit int) ([]*entities.ConversionRecord, utils.PaginationMeta, error) {
	normalized, ok := crypto.NormalizeAddress(wallet)
	if !ok {
		return nil, utils.PaginationMeta{}, domainerrors.ErrInvalidInput
	}

	params := utils.GetPaginationParams(page, limit)
	records, total, err := u.conversionRepo.ListByReferrer(ctx, normalized, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	return records, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
