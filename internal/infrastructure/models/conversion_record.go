package models

import (
	"time"

	"github.com/google/uuid"
)

type ConversionRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ReferralID     string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	ReferrerWallet string    `gorm:"type:varchar(64);not null;index"`
	AffiliateID    string    `gorm:"type:varchar(128);not null;index"`
	Status         string    `gorm:"type:varchar(16);not null"`
	Reason         *string   `gorm:"type:text"`
	ConvertedAt    time.Time `gorm:"not null"`
	ProcessedAt    time.Time `gorm:"not null"`
	CreatedAt      time.Time
}
