package entities

import "time"

// NonceTTL is how long an issued challenge nonce stays valid.
const NonceTTL = 5 * time.Minute

// Nonce is a single-use challenge token. It is deleted on first
// consumption attempt or by the expiry sweep, never reused.
type Nonce struct {
	Value     string    `json:"value"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the nonce is past its validity window.
func (n *Nonce) Expired(now time.Time) bool {
	return now.After(n.ExpiresAt)
}
