package repositories

import (
	"context"

	"github.com/google/uuid"
	"aurum-pay.backend/internal/domain/entities"
)

// QRCodeRepository persists merchant QR codes
type QRCodeRepository interface {
	Create(ctx context.Context, qr *entities.QRCode) error
	// GetActive returns the QR code only while it has not expired;
	// expired codes surface as ErrNotFound like missing ones.
	GetActive(ctx context.Context, id uuid.UUID) (*entities.QRCode, error)
}
