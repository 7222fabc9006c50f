package entities

import "time"

// AffiliateBinding is the one-to-one, immutable mapping between an
// activated wallet and the affiliate identifier provisioned for it.
// Re-requests return the existing binding instead of minting a new id.
type AffiliateBinding struct {
	WalletAddress string    `json:"walletAddress"`
	AffiliateID   string    `json:"affiliateId"`
	ReferralLink  string    `json:"referralLink"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IssueAffiliateLinkInput requests (or re-reads) the caller's referral link.
type IssueAffiliateLinkInput struct {
	ActivationInput
}

// AffiliateLinkResult is returned for both fresh and repeated issuance.
type AffiliateLinkResult struct {
	AffiliateID   string `json:"affiliateId"`
	ReferralLink  string `json:"referralLink"`
	AlreadyIssued bool   `json:"alreadyIssued"`
}
