package models

import (
	"time"

	"github.com/google/uuid"
)

type Nonce struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Value     string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
