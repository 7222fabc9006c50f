package models

import (
	"time"

	"github.com/google/uuid"
)

type ActivationRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WalletAddress string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	ActivatedAt   time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
