package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName           string    `gorm:"type:varchar(255);not null"`
	BusinessAddress        *string   `gorm:"type:text"`
	WalletAddress          string    `gorm:"type:varchar(64);not null;index"`
	ChainID                int       `gorm:"not null"`
	AcceptedToken          string    `gorm:"type:varchar(20);not null"`
	CollectibleName        *string   `gorm:"type:varchar(255)"`
	CollectibleDescription *string   `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

func (Merchant) TableName() string {
	return "merchants"
}
