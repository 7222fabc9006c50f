package entities

import "time"

// AttributionRecord binds a referee wallet to the referrer whose link it
// used. Keyed by referee wallet, first-wins, immutable once written.
type AttributionRecord struct {
	RefereeWallet  string    `json:"refereeWallet"`
	ReferrerWallet string    `json:"referrerWallet"`
	AffiliateID    string    `json:"affiliateId"`
	BoundAt        time.Time `json:"boundAt"`
}

// BindAttributionInput is the referee's bind request. The activation proof
// belongs to the referee wallet.
type BindAttributionInput struct {
	ActivationInput
	AffiliateID string `json:"affiliateId" binding:"required"`
}

// BindAttributionResult carries the stored record plus whether the
// referee was already bound to the same affiliate.
type BindAttributionResult struct {
	Record       *AttributionRecord `json:"record"`
	AlreadyBound bool               `json:"alreadyBound"`
}
