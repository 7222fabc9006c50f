package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ConversionStatus classifies how a completion event was recorded.
type ConversionStatus string

const (
	// ConversionStatusCounted advanced the referrer's effective count.
	ConversionStatusCounted ConversionStatus = "COUNTED"
	// ConversionStatusCapped was recorded for audit after the bonus cap.
	ConversionStatusCapped ConversionStatus = "CAPPED"
	// ConversionStatusIneligible was recorded for idempotency but rejected
	// by the eligibility collaborator.
	ConversionStatusIneligible ConversionStatus = "INELIGIBLE"
)

// ConversionRecord is the durable record of one external completion
// event, keyed by the external referral id (the idempotency key).
type ConversionRecord struct {
	ReferralID     string           `json:"referralId"`
	ReferrerWallet string           `json:"referrerWallet"`
	AffiliateID    string           `json:"affiliateId"`
	Status         ConversionStatus `json:"status"`
	Reason         null.String      `json:"reason,omitempty"`
	ConvertedAt    time.Time        `json:"convertedAt"`
	ProcessedAt    time.Time        `json:"processedAt"`
}

// Counts reports whether this record contributes to the referrer's
// completed-referral count (the raw count keeps growing past the cap,
// only the multiplier is clamped).
func (r *ConversionRecord) Counts() bool {
	return r.Status == ConversionStatusCounted || r.Status == ConversionStatusCapped
}

// CompletionOutcome describes what processing one completion event did.
type CompletionOutcome string

const (
	CompletionProcessed        CompletionOutcome = "PROCESSED"
	CompletionAlreadyProcessed CompletionOutcome = "ALREADY_PROCESSED"
	CompletionCapped           CompletionOutcome = "CAPPED"
	CompletionIneligible       CompletionOutcome = "INELIGIBLE"
)

// CompletionEvent is the parsed payload of the external confirmation
// source's delivery. ReferredWallet is the explicit metadata field the
// provisioning step embeds at link-click time; it is never inferred from
// loose candidate fields.
type CompletionEvent struct {
	EventType      string    `json:"eventType"`
	ReferralID     string    `json:"referralId"`
	AffiliateID    string    `json:"affiliateId"`
	ReferredWallet string    `json:"referredWallet"`
	ConvertedAt    time.Time `json:"convertedAt"`
}

// CompletionResult is the internal result of processing one event. The
// transport layer still ACKs success regardless of its contents.
type CompletionResult struct {
	Outcome        CompletionOutcome `json:"outcome"`
	ReferrerWallet string            `json:"referrerWallet,omitempty"`
}
