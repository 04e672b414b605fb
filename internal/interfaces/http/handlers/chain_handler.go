package handlers

import (
	"github.com/gin-gonic/gin"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/internal/interfaces/http/response"
	"aurum-pay.backend/internal/usecases"
)

// ChainHandler serves the static chain catalogue
type ChainHandler struct {
	registry *usecases.ChainRegistry
}

// NewChainHandler creates a new chain handler
func NewChainHandler(registry *usecases.ChainRegistry) *ChainHandler {
	return &ChainHandler{registry: registry}
}

// GetSupportedChains lists supported chains, optionally filtered by network class
// GET /api/supported-chains?network=mainnet
func (h *ChainHandler) GetSupportedChains(c *gin.Context) {
	network := c.Query("network")
	if network != "" && network != string(entities.NetworkMainnet) && network != string(entities.NetworkTestnet) {
		response.RouteError(c, domainerrors.BadRequest("network must be mainnet or testnet"))
		return
	}

	chains := make([]entities.Chain, 0)
	for _, chain := range h.registry.Chains() {
		if network != "" && string(chain.Network) != network {
			continue
		}
		chains = append(chains, chain)
	}

	response.RouteOK(c, gin.H{"chains": chains})
}
