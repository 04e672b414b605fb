package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/internal/domain/repositories"
	"aurum-pay.backend/internal/interfaces/http/response"
)

const (
	defaultQRExpiryMinutes = 15
	maxQRExpiryMinutes     = 1440
)

// QRHandler issues and resolves merchant payment QR codes
type QRHandler struct {
	qrRepo       repositories.QRCodeRepository
	merchantRepo repositories.MerchantRepository
}

// NewQRHandler creates a new QR handler
func NewQRHandler(qrRepo repositories.QRCodeRepository, merchantRepo repositories.MerchantRepository) *QRHandler {
	return &QRHandler{qrRepo: qrRepo, merchantRepo: merchantRepo}
}

// CreateQRCode issues a payment QR for a merchant
// POST /api/merchants/:id/qr
func (h *QRHandler) CreateQRCode(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid merchant id"))
		return
	}

	var input entities.CreateQRCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if amount, err := strconv.ParseFloat(input.AmountUSD, 64); err != nil || amount <= 0 {
		response.Error(c, domainerrors.BadRequest("amount must be a positive number"))
		return
	}
	expiresIn := input.ExpiresInMinutes
	if expiresIn <= 0 {
		expiresIn = defaultQRExpiryMinutes
	}
	if expiresIn > maxQRExpiryMinutes {
		expiresIn = maxQRExpiryMinutes
	}

	merchant, err := h.merchantRepo.GetByID(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The QR payload uses the JSON format the route detector's parser
	// understands.
	qrData, err := json.Marshal(gin.H{
		"address": merchant.WalletAddress,
		"chainId": merchant.ChainID,
		"token":   merchant.AcceptedToken,
		"amount":  input.AmountUSD,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	qr := &entities.QRCode{
		MerchantID: merchantID,
		AmountUSD:  input.AmountUSD,
		QRData:     string(qrData),
		ExpiresAt:  time.Now().Add(time.Duration(expiresIn) * time.Minute),
	}
	if err := h.qrRepo.Create(c.Request.Context(), qr); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, qr)
}

// GetQRCode resolves an active QR code; expired codes read as missing
// GET /api/qr/:id
func (h *QRHandler) GetQRCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid qr code id"))
		return
	}

	qr, err := h.qrRepo.GetActive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, qr)
}
