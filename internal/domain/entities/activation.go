package entities

import "time"

// ActivationRecord marks a wallet address that has proven ownership
// via signature at least once. Upserted on every successful activation.
type ActivationRecord struct {
	WalletAddress string    `json:"walletAddress"`
	ActivatedAt   time.Time `json:"activatedAt"`
}

// ActivationInput is the proof a client presents to the activation gate.
// Every privileged endpoint carries one; there is no standing session.
type ActivationInput struct {
	Wallet    string `json:"wallet" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Nonce     string `json:"nonce" binding:"required"`
	Timestamp int64  `json:"timestamp" binding:"required"` // unix seconds, embedded in the signed message
}
