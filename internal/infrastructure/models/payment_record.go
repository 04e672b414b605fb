package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserWallet    string    `gorm:"type:varchar(64);not null;index"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountUSD     string    `gorm:"type:varchar(64);not null"`
	AmountToken   string    `gorm:"type:varchar(64);not null"`
	TokenSymbol   string    `gorm:"type:varchar(20);not null"`
	ChainID       int       `gorm:"not null"`
	RouteType     string    `gorm:"type:varchar(20);not null"`
	TxHash        *string   `gorm:"type:varchar(80)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PointsAwarded int       `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relations
	Merchant *Merchant `gorm:"foreignKey:MerchantID"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}
