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

// merchantRepo implements repositories.MerchantRepository
type merchantRepo struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) repositories.MerchantRepository {
	return &merchantRepo{db: db}
}

func (r *merchantRepo) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	if merchant.CreatedAt.IsZero() {
		merchant.CreatedAt = time.Now()
	}

	m := r.toModel(merchant)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *merchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *merchantRepo) GetByWallet(ctx context.Context, walletAddress string) (*entities.Merchant, error) {
	var m models.Merchant
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *merchantRepo) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Merchant, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Merchant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.Offset())
	}

	var rows []models.Merchant
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	merchants := make([]*entities.Merchant, 0, len(rows))
	for i := range rows {
		merchants = append(merchants, r.toEntity(&rows[i]))
	}
	return merchants, total, nil
}

func (r *merchantRepo) toModel(e *entities.Merchant) *models.Merchant {
	return &models.Merchant{
		ID:                     e.ID,
		BusinessName:           e.BusinessName,
		BusinessAddress:        e.BusinessAddress.Ptr(),
		WalletAddress:          e.WalletAddress,
		ChainID:                e.ChainID,
		AcceptedToken:          e.AcceptedToken,
		CollectibleName:        e.CollectibleName.Ptr(),
		CollectibleDescription: e.CollectibleDescription.Ptr(),
		CreatedAt:              e.CreatedAt,
	}
}

func (r *merchantRepo) toEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:                     m.ID,
		BusinessName:           m.BusinessName,
		BusinessAddress:        null.StringFromPtr(m.BusinessAddress),
		WalletAddress:          m.WalletAddress,
		ChainID:                m.ChainID,
		AcceptedToken:          m.AcceptedToken,
		CollectibleName:        null.StringFromPtr(m.CollectibleName),
		CollectibleDescription: null.StringFromPtr(m.CollectibleDescription),
		CreatedAt:              m.CreatedAt,
	}
}
