package repositories

import (
	"context"

	"github.com/google/uuid"
	"aurum-pay.backend/internal/domain/entities"
	"aurum-pay.backend/pkg/utils"
)

// MerchantRepository persists merchants
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByWallet(ctx context.Context, walletAddress string) (*entities.Merchant, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Merchant, int64, error)
}
