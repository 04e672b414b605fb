package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/internal/domain/repositories"
	"aurum-pay.backend/internal/interfaces/http/response"
	"aurum-pay.backend/internal/usecases"
	"aurum-pay.backend/pkg/utils"
)

var walletPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// MerchantHandler handles merchant registration and lookup
type MerchantHandler struct {
	merchantRepo repositories.MerchantRepository
	registry     *usecases.ChainRegistry
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantRepo repositories.MerchantRepository, registry *usecases.ChainRegistry) *MerchantHandler {
	return &MerchantHandler{merchantRepo: merchantRepo, registry: registry}
}

// CreateMerchant registers a merchant
// POST /api/merchants
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var input entities.CreateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if !walletPattern.MatchString(input.WalletAddress) {
		response.Error(c, domainerrors.BadRequest("invalid wallet address"))
		return
	}
	if _, ok := h.registry.Chain(input.ChainID); !ok {
		response.Error(c, domainerrors.BadRequest("unsupported chain"))
		return
	}
	if _, deployed := h.registry.TokenAddress(input.AcceptedToken, input.ChainID); !deployed && !h.registry.IsNativeToken(input.ChainID, input.AcceptedToken) {
		response.Error(c, domainerrors.BadRequest("accepted token is not available on the chain"))
		return
	}

	merchant := &entities.Merchant{
		BusinessName:           input.BusinessName,
		BusinessAddress:        null.NewString(input.BusinessAddress, input.BusinessAddress != ""),
		WalletAddress:          input.WalletAddress,
		ChainID:                input.ChainID,
		AcceptedToken:          input.AcceptedToken,
		CollectibleName:        null.NewString(input.CollectibleName, input.CollectibleName != ""),
		CollectibleDescription: null.NewString(input.CollectibleDescription, input.CollectibleDescription != ""),
	}

	if err := h.merchantRepo.Create(c.Request.Context(), merchant); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, merchant)
}

// GetMerchant fetches a merchant by id
// GET /api/merchants/:id
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid merchant id"))
		return
	}

	merchant, err := h.merchantRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, merchant)
}

// ListMerchants pages through registered merchants
// GET /api/merchants?page=1&limit=20
func (h *MerchantHandler) ListMerchants(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid pagination parameters"))
		return
	}
	pagination := utils.GetPaginationParams(params.Page, params.Limit)

	merchants, total, err := h.merchantRepo.List(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := pagination.Meta(total)
	response.SuccessWithMeta(c, http.StatusOK, merchants, meta)
}
