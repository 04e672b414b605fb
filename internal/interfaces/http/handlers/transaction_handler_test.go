package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/pkg/utils"
)

func newTransactionRouter(paymentRepo *stubPaymentRecordRepo, merchantRepo *stubMerchantRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTransactionHandler(paymentRepo, merchantRepo)

	r := gin.New()
	r.POST("/api/transactions", h.CreateTransaction)
	r.POST("/api/transactions/:id/confirm", h.ConfirmTransaction)
	r.GET("/api/transactions/:id", h.GetTransaction)
	r.GET("/api/transactions", h.ListTransactions)
	return r
}

func existingMerchantRepo(id uuid.UUID) *stubMerchantRepo {
	return &stubMerchantRepo{
		getByID: func(_ context.Context, got uuid.UUID) (*entities.Merchant, error) {
			if got != id {
				return nil, domainerrors.ErrNotFound
			}
			return &entities.Merchant{ID: id, BusinessName: "Cafe Aurum"}, nil
		},
	}
}

func TestCreateTransaction(t *testing.T) {
	merchantID := uuid.New()
	var created *entities.PaymentRecord
	paymentRepo := &stubPaymentRecordRepo{
		create: func(_ context.Context, record *entities.PaymentRecord) error {
			record.ID = uuid.New()
			created = record
			return nil
		},
	}
	r := newTransactionRouter(paymentRepo, existingMerchantRepo(merchantID))

	w := postJSON(r, "/api/transactions", gin.H{
		"userWallet":  testUserWallet,
		"merchantId":  merchantID.String(),
		"amountUsd":   "42.75",
		"amountToken": "42.75",
		"tokenSymbol": "USDC",
		"chainId":     137,
		"routeType":   "direct",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, entities.PaymentStatusPending, created.Status)
	assert.Equal(t, entities.RouteTypeDirect, created.RouteType)
	assert.Equal(t, 0, created.PointsAwarded)
}

func TestCreateTransaction_Validation(t *testing.T) {
	merchantID := uuid.New()
	paymentRepo := &stubPaymentRecordRepo{
		create: func(context.Context, *entities.PaymentRecord) error {
			t.Fatal("create should not be called")
			return nil
		},
	}
	r := newTransactionRouter(paymentRepo, existingMerchantRepo(merchantID))

	cases := []struct {
		name       string
		body       gin.H
		wantStatus int
	}{
		{"bad wallet", gin.H{"userWallet": "0x1", "merchantId": merchantID.String(), "amountUsd": "1", "amountToken": "1", "tokenSymbol": "USDC", "chainId": 137, "routeType": "direct"}, http.StatusBadRequest},
		{"bad merchant id", gin.H{"userWallet": testUserWallet, "merchantId": "nope", "amountUsd": "1", "amountToken": "1", "tokenSymbol": "USDC", "chainId": 137, "routeType": "direct"}, http.StatusBadRequest},
		{"bad amount", gin.H{"userWallet": testUserWallet, "merchantId": merchantID.String(), "amountUsd": "x", "amountToken": "1", "tokenSymbol": "USDC", "chainId": 137, "routeType": "direct"}, http.StatusBadRequest},
		{"bad route type", gin.H{"userWallet": testUserWallet, "merchantId": merchantID.String(), "amountUsd": "1", "amountToken": "1", "tokenSymbol": "USDC", "chainId": 137, "routeType": "teleport"}, http.StatusBadRequest},
		{"unknown merchant", gin.H{"userWallet": testUserWallet, "merchantId": uuid.NewString(), "amountUsd": "1", "amountToken": "1", "tokenSymbol": "USDC", "chainId": 137, "routeType": "direct"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/api/transactions", tc.body)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestConfirmTransaction_AwardsWholeDollarPoints(t *testing.T) {
	id := uuid.New()
	record := &entities.PaymentRecord{
		ID:        id,
		AmountUSD: "42.75",
		Status:    entities.PaymentStatusPending,
	}
	paymentRepo := &stubPaymentRecordRepo{
		getByID: func(_ context.Context, got uuid.UUID) (*entities.PaymentRecord, error) {
			if got != id {
				return nil, domainerrors.ErrNotFound
			}
			return record, nil
		},
		confirm: func(_ context.Context, got uuid.UUID, txHash string, points int) (*entities.PaymentRecord, error) {
			assert.Equal(t, id, got)
			assert.Equal(t, "0xabc123", txHash)
			assert.Equal(t, 42, points)
			confirmed := *record
			confirmed.Status = entities.PaymentStatusConfirmed
			confirmed.TxHash = null.StringFrom(txHash)
			confirmed.PointsAwarded = points
			return &confirmed, nil
		},
	}
	r := newTransactionRouter(paymentRepo, &stubMerchantRepo{})

	w := postJSON(r, "/api/transactions/"+id.String()+"/confirm", gin.H{"txHash": "0xabc123"})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data entities.PaymentRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, entities.PaymentStatusConfirmed, body.Data.Status)
	assert.Equal(t, 42, body.Data.PointsAwarded)
}

func TestConfirmTransaction_AlreadyConfirmed(t *testing.T) {
	id := uuid.New()
	paymentRepo := &stubPaymentRecordRepo{
		getByID: func(context.Context, uuid.UUID) (*entities.PaymentRecord, error) {
			return &entities.PaymentRecord{ID: id, AmountUSD: "10", Status: entities.PaymentStatusConfirmed}, nil
		},
		confirm: func(context.Context, uuid.UUID, string, int) (*entities.PaymentRecord, error) {
			return nil, domainerrors.ErrNotFound
		},
	}
	r := newTransactionRouter(paymentRepo, &stubMerchantRepo{})

	w := postJSON(r, "/api/transactions/"+id.String()+"/confirm", gin.H{"txHash": "0xabc123"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListTransactions(t *testing.T) {
	paymentRepo := &stubPaymentRecordRepo{
		listByWallet: func(_ context.Context, wallet string, pagination utils.PaginationParams) ([]*entities.PaymentRecord, int64, error) {
			assert.Equal(t, testUserWallet, wallet)
			return []*entities.PaymentRecord{{AmountUSD: "10"}}, 1, nil
		},
	}
	r := newTransactionRouter(paymentRepo, &stubMerchantRepo{})

	w := getPath(r, "/api/transactions?wallet="+testUserWallet)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	assert.Equal(t, http.StatusBadRequest, getPath(r, "/api/transactions?wallet=short").Code)
}
