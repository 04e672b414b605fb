package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/internal/domain/repositories"
	"aurum-pay.backend/internal/infrastructure/models"
)

// qrCodeRepo implements repositories.QRCodeRepository
type qrCodeRepo struct {
	db *gorm.DB
}

// NewQRCodeRepository creates a new QR code repository
func NewQRCodeRepository(db *gorm.DB) repositories.QRCodeRepository {
	return &qrCodeRepo{db: db}
}

func (r *qrCodeRepo) Create(ctx context.Context, qr *entities.QRCode) error {
	if qr.ID == uuid.Nil {
		qr.ID = uuid.New()
	}
	if qr.CreatedAt.IsZero() {
		qr.CreatedAt = time.Now()
	}

	m := &models.QRCode{
		ID:         qr.ID,
		MerchantID: qr.MerchantID,
		AmountUSD:  qr.AmountUSD,
		QRData:     qr.QRData,
		ExpiresAt:  qr.ExpiresAt,
		CreatedAt:  qr.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *qrCodeRepo) GetActive(ctx context.Context, id uuid.UUID) (*entities.QRCode, error) {
	var m models.QRCode
	err := r.db.WithContext(ctx).Preload("Merchant").
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	qr := &entities.QRCode{
		ID:         m.ID,
		MerchantID: m.MerchantID,
		AmountUSD:  m.AmountUSD,
		QRData:     m.QRData,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
	if m.Merchant != nil {
		qr.Merchant = &entities.Merchant{
			ID:              m.Merchant.ID,
			BusinessName:    m.Merchant.BusinessName,
			BusinessAddress: null.StringFromPtr(m.Merchant.BusinessAddress),
			WalletAddress:   m.Merchant.WalletAddress,
			ChainID:         m.Merchant.ChainID,
			AcceptedToken:   m.Merchant.AcceptedToken,
			CreatedAt:       m.Merchant.CreatedAt,
		}
	}
	return qr, nil
}
