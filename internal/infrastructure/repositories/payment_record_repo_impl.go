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
	"aurum-pay.backend/pkg/utils"
)

// paymentRecordRepo implements repositories.PaymentRecordRepository
type paymentRecordRepo struct {
	db *gorm.DB
}

// NewPaymentRecordRepository creates a new payment record repository
func NewPaymentRecordRepository(db *gorm.DB) repositories.PaymentRecordRepository {
	return &paymentRecordRepo{db: db}
}

func (r *paymentRecordRepo) Create(ctx context.Context, record *entities.PaymentRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Status == "" {
		record.Status = entities.PaymentStatusPending
	}
	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	return r.db.WithContext(ctx).Create(r.toModel(record)).Error
}

func (r *paymentRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentRecord, error) {
	var m models.PaymentRecord
	if err := r.db.WithContext(ctx).Preload("Merchant").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *paymentRecordRepo) ListByWallet(ctx context.Context, userWallet string, pagination utils.PaginationParams) ([]*entities.PaymentRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentRecord{}).
		Where("user_wallet = ?", userWallet).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Preload("Merchant").
		Where("user_wallet = ?", userWallet).Order("created_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.Offset())
	}

	var rows []models.PaymentRecord
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*entities.PaymentRecord, 0, len(rows))
	for i := range rows {
		records = append(records, r.toEntity(&rows[i]))
	}
	return records, total, nil
}

// Confirm settles a pending record in one update so concurrent confirms
// cannot double-award points.
func (r *paymentRecordRepo) Confirm(ctx context.Context, id uuid.UUID, txHash string, points int) (*entities.PaymentRecord, error) {
	res := r.db.WithContext(ctx).Model(&models.PaymentRecord{}).
		Where("id = ? AND status = ?", id, string(entities.PaymentStatusPending)).
		Updates(map[string]interface{}{
			"tx_hash":        txHash,
			"status":         string(entities.PaymentStatusConfirmed),
			"points_awarded": points,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *paymentRecordRepo) toModel(e *entities.PaymentRecord) *models.PaymentRecord {
	return &models.PaymentRecord{
		ID:            e.ID,
		UserWallet:    e.UserWallet,
		MerchantID:    e.MerchantID,
		AmountUSD:     e.AmountUSD,
		AmountToken:   e.AmountToken,
		TokenSymbol:   e.TokenSymbol,
		ChainID:       e.ChainID,
		RouteType:     string(e.RouteType),
		TxHash:        e.TxHash.Ptr(),
		Status:        string(e.Status),
		PointsAwarded: e.PointsAwarded,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *paymentRecordRepo) toEntity(m *models.PaymentRecord) *entities.PaymentRecord {
	e := &entities.PaymentRecord{
		ID:            m.ID,
		UserWallet:    m.UserWallet,
		MerchantID:    m.MerchantID,
		AmountUSD:     m.AmountUSD,
		AmountToken:   m.AmountToken,
		TokenSymbol:   m.TokenSymbol,
		ChainID:       m.ChainID,
		RouteType:     entities.RouteType(m.RouteType),
		TxHash:        null.StringFromPtr(m.TxHash),
		Status:        entities.PaymentStatus(m.Status),
		PointsAwarded: m.PointsAwarded,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Merchant != nil {
		e.MerchantName = m.Merchant.BusinessName
	}
	return e
}
