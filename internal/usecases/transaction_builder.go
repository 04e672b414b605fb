package usecases

import (
	"fmt"
	"strconv"

	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
)

// TransactionBuilder turns an executable route into an unsigned
// transaction payload for the payer's wallet to sign.
type TransactionBuilder struct {
	registry *ChainRegistry
}

// NewTransactionBuilder creates a new transaction builder
func NewTransactionBuilder(registry *ChainRegistry) *TransactionBuilder {
	return &TransactionBuilder{registry: registry}
}

// BuildTransaction prepares the payload for a direct route. Bridge
// routes are estimation-only and rejected here; insufficient routes can
// never execute.
func (b *TransactionBuilder) BuildTransaction(input entities.PrepareTransactionInput) (*entities.TransactionPayload, error) {
	route := &input.Route

	if !isValidEVMAddress(input.UserWallet) {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrInvalidAddress, input.UserWallet)
	}
	if !isValidEVMAddress(input.MerchantAddress) {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrInvalidAddress, input.MerchantAddress)
	}

	amount, ok := parsePositiveAmount(input.Amount)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domainerrors.ErrInvalidAmount, input.Amount)
	}

	switch route.RouteType {
	case entities.RouteTypeDirect:
	case entities.RouteTypeBridge:
		return nil, fmt.Errorf("%w: cross-chain transactions are not yet implemented", domainerrors.ErrUnsupportedRoute)
	default:
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrUnsupportedRoute, route.RouteType)
	}

	chainID := route.ToChainID

	if b.registry.IsNativeToken(chainID, route.FromToken) {
		return &entities.TransactionPayload{
			To:       input.MerchantAddress,
			Value:    toSmallestUnit(amount, TokenDecimals).String(),
			Data:     "0x",
			GasLimit: strconv.Itoa(NativeTransferGasLimit),
			ChainID:  chainID,
			Type:     "native_transfer",
		}, nil
	}

	if !isValidEVMAddress(route.FromTokenAddress) {
		return nil, fmt.Errorf("%w: route is missing the token contract address", domainerrors.ErrBadRequest)
	}

	return &entities.TransactionPayload{
		To:       route.FromTokenAddress,
		Value:    "0",
		Data:     encodeERC20Transfer(input.MerchantAddress, amount),
		GasLimit: strconv.Itoa(ERC20TransferGasLimit),
		ChainID:  chainID,
		Type:     "erc20_transfer",
	}, nil
}

// encodeERC20Transfer ABI-encodes transfer(address,uint256) calldata.
// The result is always 138 characters: 0x + 8 selector + two 64-char words.
func encodeERC20Transfer(recipient string, amount float64) string {
	paddedRecipient := padLeft(recipient[2:], EVMWordSizeHex)
	paddedAmount := padLeft(toSmallestUnit(amount, TokenDecimals).Text(16), EVMWordSizeHex)
	return ERC20TransferSelector + paddedRecipient + paddedAmount
}
