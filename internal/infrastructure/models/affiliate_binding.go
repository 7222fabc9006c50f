package models

import (
	"time"

	"github.com/google/uuid"
)

type AffiliateBinding struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WalletAddress string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	AffiliateID   string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	ReferralLink  string    `gorm:"type:text"`
	CreatedAt     time.Time
}
