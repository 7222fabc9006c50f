package entities

// Multiplier is the derived allocation bonus breakdown for a referrer.
type Multiplier struct {
	Base            int  `json:"base"`
	Bonus           int  `json:"bonus"`
	Total           int  `json:"total"`
	MaxBonusReached bool `json:"maxBonusReached"`
}

// ReferralProgress is the read-only view served to clients.
type ReferralProgress struct {
	WalletAddress      string     `json:"walletAddress"`
	CompletedReferrals int64      `json:"completedReferrals"`
	Multiplier         Multiplier `json:"multiplier"`
}
