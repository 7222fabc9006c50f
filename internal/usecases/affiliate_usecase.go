package usecases

import (
	"context"
	"errors"
	"time"

	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/internal/domain/repositories"
)

// AffiliateUsecase issues referral links to activated wallets. A wallet
// gets exactly one affiliate identifier for its lifetime; re-requests
// return the existing one.
type AffiliateUsecase struct {
	activationUsecase *ActivationUsecase
	affiliateRepo     repositories.AffiliateRepository
	provisioner       AffiliateProvisioner
}

// NewAffiliateUsecase creates a new affiliate usecase
func NewAffiliateUsecase(
	activationUsecase *ActivationUsecase,
	affiliateRepo repositories.AffiliateRepository,
	provisioner AffiliateProvisioner,
) *AffiliateUsecase {
	return &AffiliateUsecase{
		activationUsecase: activationUsecase,
		affiliateRepo:     affiliateRepo,
		provisioner:       provisioner,
	}
}

// IssueLink runs the activation gate on the request's own proof, then
// returns the wallet's existing binding or provisions a new one.
func (u *AffiliateUsecase) IssueLink(ctx context.Context, input *entities.IssueAffiliateLinkInput) (*entities.AffiliateLinkResult, error) {
	wallet, err := u.activationUsecase.Activate(ctx, &input.ActivationInput)
	if err != nil {
		return nil, err
	}

	existing, err := u.affiliateRepo.GetByWallet(ctx, wallet)
	if err == nil {
		return &entities.AffiliateLinkResult{
			AffiliateID:   existing.AffiliateID,
			ReferralLink:  existing.ReferralLink,
			AlreadyIssued: true,
		}, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	affiliateID, referralLink, err := u.provisioner.Provision(ctx, wallet)
	if err != nil {
		return nil, err
	}

	binding := &entities.AffiliateBinding{
		WalletAddress: wallet,
		AffiliateID:   affiliateID,
		ReferralLink:  referralLink,
		CreatedAt:     time.Now(),
	}
	if err := u.affiliateRepo.Create(ctx, binding); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// A concurrent request won the insert; its binding stands.
			winner, readErr := u.affiliateRepo.GetByWallet(ctx, wallet)
			if readErr != nil {
				return nil, readErr
			}
			return &entities.AffiliateLinkResult{
				AffiliateID:   winner.AffiliateID,
				ReferralLink:  winner.ReferralLink,
				AlreadyIssued: true,
			}, nil
		}
		return nil, err
	}

	return &entities.AffiliateLinkResult{
		AffiliateID:  affiliateID,
		ReferralLink: referralLink,
	}, nil
}
