package usecases

import (
	"context"
	"errors"
	"time"

	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/domain/repositories"
	"refgate.backend/pkg/metrics"
)

// AttributionUsecase records the immutable referee→referrer binding.
type AttributionUsecase struct {
	activationUsecase *ActivationUsecase
	affiliateRepo     repositories.AffiliateRepository
	attributionRepo   repositories.AttributionRepository
}

// NewAttributionUsecase creates a new attribution usecase
func NewAttributionUsecase(
	activationUsecase *ActivationUsecase,
	affiliateRepo repositories.AffiliateRepository,
	attributionRepo repositories.AttributionRepository,
) *AttributionUsecase {
	return &AttributionUsecase{
		activationUsecase: activationUsecase,
		affiliateRepo:     affiliateRepo,
		attributionRepo:   attributionRepo,
	}
}

// Bind attributes the referee (the request's activated wallet) to the
// referrer behind affiliateID. First-wins: a referee that is already
// bound gets its existing record back for the same affiliate, or
// ErrConflictingBinding for a different one. Self-referral is rejected
// before any write.
func (u *AttributionUsecase) Bind(ctx context.Context, input *entities.BindAttributionInput) (*entities.BindAttributionResult, error) {
	referee, err := u.activationUsecase.Activate(ctx, &input.ActivationInput)
	if err != nil {
		return nil, err
	}

	binding, err := u.affiliateRepo.GetByAffiliateID(ctx, input.AffiliateID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			metrics.AttributionBinds.WithLabelValues("affiliate_not_found").Inc()
			return nil, domainerrors.ErrAffiliateNotFound
		}
		return nil, err
	}

	if referee == binding.WalletAddress {
		metrics.AttributionBinds.WithLabelValues("self_referral").Inc()
		return nil, domainerrors.ErrSelfReferral
	}

	if existing, err := u.attributionRepo.GetByReferee(ctx, referee); err == nil {
		return u.resolveExisting(existing, input.AffiliateID)
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	record := &entities.AttributionRecord{
		RefereeWallet:  referee,
		ReferrerWallet: binding.WalletAddress,
		AffiliateID:    binding.AffiliateID,
		BoundAt:        time.Now(),
	}
	if err := u.attributionRepo.Create(ctx, record); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Concurrent bind won; evaluate against the stored record.
			existing, readErr := u.attributionRepo.GetByReferee(ctx, referee)
			if readErr != nil {
				return nil, readErr
			}
			return u.resolveExisting(existing, input.AffiliateID)
		}
		return nil, err
	}

	metrics.AttributionBinds.WithLabelValues("bound").Inc()
	return &entities.BindAttributionResult{Record: record}, nil
}

func (u *AttributionUsecase) resolveExisting(existing *entities.AttributionRecord, affiliateID string) (*entities.BindAttributionResult, error) {
	if existing.AffiliateID != affiliateID {
		metrics.AttributionBinds.WithLabelValues("conflicting").Inc()
		return nil, domainerrors.ErrConflictingBinding
	}
	metrics.AttributionBinds.WithLabelValues("already_bound").Inc()
	return &entities.BindAttributionResult{Record: existing, AlreadyBound: true}, nil
}
