package handlers

import (
	"context"

	"github.com/google/uuid"
	"aurum-pay.backend/internal/domain/entities"
	"aurum-pay.backend/pkg/utils"
)

type stubMerchantRepo struct {
	create      func(ctx context.Context, merchant *entities.Merchant) error
	getByID     func(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	getByWallet func(ctx context.Context, walletAddress string) (*entities.Merchant, error)
	list        func(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Merchant, int64, error)
}

func (s *stubMerchantRepo) Create(ctx context.Context, merchant *entities.Merchant) error {
	return s.create(ctx, merchant)
}

func (s *stubMerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	return s.getByID(ctx, id)
}

func (s *stubMerchantRepo) GetByWallet(ctx context.Context, walletAddress string) (*entities.Merchant, error) {
	return s.getByWallet(ctx, walletAddress)
}

func (s *stubMerchantRepo) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Merchant, int64, error) {
	return s.list(ctx, pagination)
}

type stubPaymentRecordRepo struct {
	create       func(ctx context.Context, record *entities.PaymentRecord) error
	getByID      func(ctx context.Context, id uuid.UUID) (*entities.PaymentRecord, error)
	listByWallet func(ctx context.Context, userWallet string, pagination utils.PaginationParams) ([]*entities.PaymentRecord, int64, error)
	confirm      func(ctx context.Context, id uuid.UUID, txHash string, points int) (*entities.PaymentRecord, error)
}

func (s *stubPaymentRecordRepo) Create(ctx context.Context, record *entities.PaymentRecord) error {
	return s.create(ctx, record)
}

func (s *stubPaymentRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentRecord, error) {
	return s.getByID(ctx, id)
}

func (s *stubPaymentRecordRepo) ListByWallet(ctx context.Context, userWallet string, pagination utils.PaginationParams) ([]*entities.PaymentRecord, int64, error) {
	return s.listByWallet(ctx, userWallet, pagination)
}

func (s *stubPaymentRecordRepo) Confirm(ctx context.Context, id uuid.UUID, txHash string, points int) (*entities.PaymentRecord, error) {
	return s.confirm(ctx, id, txHash, points)
}

type stubQRCodeRepo struct {
	create    func(ctx context.Context, qr *entities.QRCode) error
	getActive func(ctx context.Context, id uuid.UUID) (*entities.QRCode, error)
}

func (s *stubQRCodeRepo) Create(ctx context.Context, qr *entities.QRCode) error {
	return s.create(ctx, qr)
}

func (s *stubQRCodeRepo) GetActive(ctx context.Context, id uuid.UUID) (*entities.QRCode, error) {
	return s.getActive(ctx, id)
}
