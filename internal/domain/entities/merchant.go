package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Merchant is a payee that presents payment QR codes.
type Merchant struct {
	ID                     uuid.UUID   `json:"id"`
	BusinessName           string      `json:"businessName"`
	BusinessAddress        null.String `json:"businessAddress,omitempty"`
	WalletAddress          string      `json:"walletAddress"`
	ChainID                int         `json:"chainId"`
	AcceptedToken          string      `json:"acceptedToken"`
	CollectibleName        null.String `json:"collectibleName,omitempty"`
	CollectibleDescription null.String `json:"collectibleDescription,omitempty"`
	CreatedAt              time.Time   `json:"createdAt"`
}

// CreateMerchantInput is the request body for merchant registration
type CreateMerchantInput struct {
	BusinessName           string `json:"businessName" binding:"required"`
	BusinessAddress        string `json:"businessAddress"`
	WalletAddress          string `json:"walletAddress" binding:"required"`
	ChainID                int    `json:"chainId" binding:"required"`
	AcceptedToken          string `json:"acceptedToken" binding:"required"`
	CollectibleName        string `json:"collectibleName"`
	CollectibleDescription string `json:"collectibleDescription"`
}

// PaymentStatus is the lifecycle state of a payment record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentRecord is a persisted payment history entry. The route core
// never reads these; they exist for the history and loyalty surfaces.
type PaymentRecord struct {
	ID            uuid.UUID     `json:"id"`
	UserWallet    string        `json:"userWallet"`
	MerchantID    uuid.UUID     `json:"merchantId"`
	MerchantName  string        `json:"merchantName,omitempty"`
	AmountUSD     string        `json:"amountUsd"`
	AmountToken   string        `json:"amountToken"`
	TokenSymbol   string        `json:"tokenSymbol"`
	ChainID       int           `json:"chainId"`
	RouteType     RouteType     `json:"routeType"`
	TxHash        null.String   `json:"txHash,omitempty"`
	Status        PaymentStatus `json:"status"`
	PointsAwarded int           `json:"pointsAwarded"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreatePaymentRecordInput is the request body for recording a payment
type CreatePaymentRecordInput struct {
	UserWallet  string `json:"userWallet" binding:"required"`
	MerchantID  string `json:"merchantId" binding:"required"`
	AmountUSD   string `json:"amountUsd" binding:"required"`
	AmountToken string `json:"amountToken" binding:"required"`
	TokenSymbol string `json:"tokenSymbol" binding:"required"`
	ChainID     int    `json:"chainId" binding:"required"`
	RouteType   string `json:"routeType" binding:"required"`
}

// ConfirmPaymentInput carries the on-chain hash that settles a record
type ConfirmPaymentInput struct {
	TxHash string `json:"txHash" binding:"required"`
}

// QRCode is a merchant-issued payment request with an expiry.
type QRCode struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchantId"`
	AmountUSD  string    `json:"amountUsd"`
	QRData     string    `json:"qrData"`
	ExpiresAt  time.Time `json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`

	// Joined fields
	Merchant *Merchant `json:"merchant,omitempty"`
}

// CreateQRCodeInput is the request body for QR generation
type CreateQRCodeInput struct {
	AmountUSD        string `json:"amountUsd" binding:"required"`
	ExpiresInMinutes int    `json:"expiresInMinutes"`
}
