package models

import (
	"time"

	"github.com/google/uuid"
)

type AttributionRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RefereeWallet  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	ReferrerWallet string    `gorm:"type:varchar(64);not null;index"`
	AffiliateID    string    `gorm:"type:varchar(128);not null;index"`
	BoundAt        time.Time `gorm:"not null"`
	CreatedAt      time.Time
}
