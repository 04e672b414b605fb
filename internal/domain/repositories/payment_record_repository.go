package repositories

import (
	"context"

	"github.com/google/uuid"
	"aurum-pay.backend/internal/domain/entities"
	"aurum-pay.backend/pkg/utils"
)

// PaymentRecordRepository persists payment history entries
type PaymentRecordRepository interface {
	Create(ctx context.Context, record *entities.PaymentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentRecord, error)
	ListByWallet(ctx context.Context, userWallet string, pagination utils.PaginationParams) ([]*entities.PaymentRecord, int64, error)
	// Confirm transitions a pending record to confirmed, stores the tx
	// hash and the awarded loyalty points. Returns ErrNotFound when no
	// pending record with the id exists.
	Confirm(ctx context.Context, id uuid.UUID, txHash string, points int) (*entities.PaymentRecord, error)
}
