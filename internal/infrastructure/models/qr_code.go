package models

import (
	"time"

	"github.com/google/uuid"
)

type QRCode struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountUSD  string    `gorm:"type:varchar(64);not null"`
	QRData     string    `gorm:"type:text;not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time

	// Relations
	Merchant *Merchant `gorm:"foreignKey:MerchantID"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}
