package handlers

import (
	"github.com/gin-gonic/gin"
	"aurum-pay.backend/internal/interfaces/http/response"
	"aurum-pay.backend/internal/usecases"
)

// BalanceHandler serves per-wallet holdings
type BalanceHandler struct {
	balances usecases.BalanceProvider
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(balances usecases.BalanceProvider) *BalanceHandler {
	return &BalanceHandler{balances: balances}
}

// GetUserBalances lists a wallet's holdings across supported chains
// GET /api/user-balances/:wallet
func (h *BalanceHandler) GetUserBalances(c *gin.Context) {
	wallet := c.Param("wallet")

	holdings, err := h.balances.GetUserBalances(c.Request.Context(), wallet)
	if err != nil {
		response.RouteError(c, err)
		return
	}

	response.RouteOK(c, gin.H{
		"wallet":   wallet,
		"balances": holdings,
	})
}
