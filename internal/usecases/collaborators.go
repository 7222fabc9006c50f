package usecases

import "context"

// AffiliateProvisioner is the external affiliate-identifier service.
// The core consumes the returned identifier and link; minting them is
// the collaborator's job.
type AffiliateProvisioner interface {
	Provision(ctx context.Context, wallet string) (affiliateID, referralLink string, err error)
}

// EligibilityChecker is the optional external qualifying-balance gate.
// Callers treat any error as not eligible: a referral is never granted
// on uncertain eligibility.
type EligibilityChecker interface {
	IsEligible(ctx context.Context, wallet string) (bool, error)
}
