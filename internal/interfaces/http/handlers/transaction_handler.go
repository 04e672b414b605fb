package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/internal/domain/repositories"
	"aurum-pay.backend/internal/interfaces/http/response"
	"aurum-pay.backend/pkg/utils"
)

// TransactionHandler handles payment history endpoints
type TransactionHandler struct {
	paymentRepo  repositories.PaymentRecordRepository
	merchantRepo repositories.MerchantRepository
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(paymentRepo repositories.PaymentRecordRepository, merchantRepo repositories.MerchantRepository) *TransactionHandler {
	return &TransactionHandler{paymentRepo: paymentRepo, merchantRepo: merchantRepo}
}

// CreateTransaction records a pending payment
// POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input entities.CreatePaymentRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if !walletPattern.MatchString(input.UserWallet) {
		response.Error(c, domainerrors.BadRequest("invalid wallet address"))
		return
	}
	merchantID, err := uuid.Parse(input.MerchantID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid merchant id"))
		return
	}
	if _, err := strconv.ParseFloat(input.AmountUSD, 64); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid amount"))
		return
	}

	switch entities.RouteType(input.RouteType) {
	case entities.RouteTypeDirect, entities.RouteTypeBridge:
	default:
		response.Error(c, domainerrors.BadRequest("route type must be direct or bridge"))
		return
	}

	if _, err := h.merchantRepo.GetByID(c.Request.Context(), merchantID); err != nil {
		response.Error(c, err)
		return
	}

	record := &entities.PaymentRecord{
		UserWallet:  input.UserWallet,
		MerchantID:  merchantID,
		AmountUSD:   input.AmountUSD,
		AmountToken: input.AmountToken,
		TokenSymbol: input.TokenSymbol,
		ChainID:     input.ChainID,
		RouteType:   entities.RouteType(input.RouteType),
		Status:      entities.PaymentStatusPending,
	}

	if err := h.paymentRepo.Create(c.Request.Context(), record); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, record)
}

// ConfirmTransaction settles a pending payment and awards loyalty points
// POST /api/transactions/:id/confirm
func (h *TransactionHandler) ConfirmTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid transaction id"))
		return
	}

	var input entities.ConfirmPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.paymentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// One point per whole dollar spent.
	points := 0
	if amountUSD, err := strconv.ParseFloat(record.AmountUSD, 64); err == nil && amountUSD > 0 {
		points = int(math.Floor(amountUSD))
	}

	confirmed, err := h.paymentRepo.Confirm(c.Request.Context(), id, input.TxHash, points)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NewAppError(http.StatusConflict, "transaction is not pending", domainerrors.ErrAlreadyExists))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, confirmed)
}

// GetTransaction fetches one payment record
// GET /api/transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid transaction id"))
		return
	}

	record, err := h.paymentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, record)
}

// ListTransactions pages through a wallet's payment history
// GET /api/transactions?wallet=0x...&page=1&limit=20
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	wallet := c.Query("wallet")
	if !walletPattern.MatchString(wallet) {
		response.Error(c, domainerrors.BadRequest("invalid wallet address"))
		return
	}

	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid pagination parameters"))
		return
	}
	pagination := utils.GetPaginationParams(params.Page, params.Limit)

	records, total, err := h.paymentRepo.ListByWallet(c.Request.Context(), wallet, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := pagination.Meta(total)
	response.SuccessWithMeta(c, http.StatusOK, records, meta)
}
