package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/internal/interfaces/http/response"
	"aurum-pay.backend/internal/usecases"
)

type RouteService interface {
	DetectRoute(ctx context.Context, input entities.DetectRouteInput) (*entities.DetectRouteResult, error)
	ValidateRoute(ctx context.Context, input entities.ValidateRouteInput) (*entities.RouteValidation, error)
}

type TransactionPreparer interface {
	BuildTransaction(input entities.PrepareTransactionInput) (*entities.TransactionPayload, error)
}

// RouteHandler handles route detection and transaction preparation
type RouteHandler struct {
	routes   RouteService
	builder  TransactionPreparer
	registry *usecases.ChainRegistry
	oracle   usecases.GasOracle
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routes RouteService, builder TransactionPreparer, registry *usecases.ChainRegistry, oracle usecases.GasOracle) *RouteHandler {
	return &RouteHandler{
		routes:   routes,
		builder:  builder,
		registry: registry,
		oracle:   oracle,
	}
}

// DetectRoute finds the best payment path for a merchant QR
// POST /api/detect-route
func (h *RouteHandler) DetectRoute(c *gin.Context) {
	var input entities.DetectRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RouteError(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.routes.DetectRoute(c.Request.Context(), input)
	if err != nil {
		response.RouteError(c, err)
		return
	}

	response.RouteOK(c, gin.H{
		"recommendedPath": result.RecommendedPath,
		"merchantAddress": result.MerchantAddress,
		"merchantInfo":    result.MerchantInfo,
		"alternatives":    result.Alternatives,
	})
}

// PrepareTransaction builds an unsigned transaction for a detected route
// POST /api/prepare-transaction
func (h *RouteHandler) PrepareTransaction(c *gin.Context) {
	var input entities.PrepareTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RouteError(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tx, err := h.builder.BuildTransaction(input)
	if err != nil {
		response.RouteError(c, err)
		return
	}

	response.RouteOK(c, gin.H{"transaction": tx})
}

// ValidateRoute re-checks a route right before execution
// POST /api/validate-route
func (h *RouteHandler) ValidateRoute(c *gin.Context) {
	var input entities.ValidateRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RouteError(c, domainerrors.BadRequest(err.Error()))
		return
	}

	validation, err := h.routes.ValidateRoute(c.Request.Context(), input)
	if err != nil {
		response.RouteError(c, err)
		return
	}

	response.RouteOK(c, gin.H{"validation": validation})
}

// GetTokenAddresses lists known token deployments on a chain
// GET /api/token-addresses/:chainId
func (h *RouteHandler) GetTokenAddresses(c *gin.Context) {
	chainID, err := strconv.Atoi(c.Param("chainId"))
	if err != nil {
		response.RouteError(c, domainerrors.BadRequest("invalid chain id"))
		return
	}
	if _, ok := h.registry.Chain(chainID); !ok {
		response.RouteError(c, domainerrors.ErrUnsupportedChain)
		return
	}

	response.RouteOK(c, gin.H{
		"chainId": chainID,
		"tokens":  h.registry.TokenAddressesForChain(chainID),
	})
}

// GetGasEstimate prices a transfer on a chain
// GET /api/gas-estimate/:chainId?token=USDC
func (h *RouteHandler) GetGasEstimate(c *gin.Context) {
	chainID, err := strconv.Atoi(c.Param("chainId"))
	if err != nil {
		response.RouteError(c, domainerrors.BadRequest("invalid chain id"))
		return
	}
	if _, ok := h.registry.Chain(chainID); !ok {
		response.RouteError(c, domainerrors.ErrUnsupportedChain)
		return
	}

	token := c.Query("token")
	if token == "" {
		token = h.registry.NativeSymbol(chainID)
	}

	estimate := h.oracle.EstimateDirect(chainID, token)
	response.RouteOK(c, gin.H{
		"chainId":              chainID,
		"token":                token,
		"gasLimit":             estimate.GasLimit,
		"estimatedGasUSD":      estimate.EstimatedGasUSD,
		"estimatedTimeSeconds": estimate.EstimatedTimeSec,
	})
}
