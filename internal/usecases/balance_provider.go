package usecases

import (
	"context"
	"fmt"

	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/internal/infrastructure/blockchain"
	"aurum-pay.backend/pkg/logger"
)

// BalanceProvider reads a wallet's token holdings across chains.
type BalanceProvider interface {
	GetUserBalances(ctx context.Context, wallet string) ([]entities.Holding, error)
}

// MockBalanceProvider serves a fixed multi-chain portfolio for demo and
// development use.
type MockBalanceProvider struct {
	registry *ChainRegistry
}

// NewMockBalanceProvider creates a new mock balance provider
func NewMockBalanceProvider(registry *ChainRegistry) *MockBalanceProvider {
	return &MockBalanceProvider{registry: registry}
}

// GetUserBalances returns the demo portfolio. Zero balances are dropped.
func (p *MockBalanceProvider) GetUserBalances(_ context.Context, wallet string) ([]entities.Holding, error) {
	if !isValidEVMAddress(wallet) {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrInvalidAddress, wallet)
	}

	fixtures := []entities.Holding{
		{Token: "USDC", ChainID: 137, Balance: "110.52"},
		{Token: "ETH", ChainID: 1, Balance: "0.12"},
		{Token: "USDC", ChainID: 42161, Balance: "25.00"},
		{Token: "MATIC", ChainID: 137, Balance: "50.0"},
	}

	holdings := make([]entities.Holding, 0, len(fixtures))
	for _, h := range fixtures {
		if v, ok := parsePositiveAmount(h.Balance); !ok || v == 0 {
			continue
		}
		h.Chain = p.registry.ChainName(h.ChainID)
		if addr, ok := p.registry.TokenAddress(h.Token, h.ChainID); ok {
			h.TokenAddress = addr
		} else {
			h.TokenAddress = entities.NativeTokenAddress
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// RPCBalanceProvider reads live balances over JSON-RPC, one chain at a
// time. A chain that fails to answer is skipped rather than failing the
// whole scan.
type RPCBalanceProvider struct {
	registry *ChainRegistry
	factory  *blockchain.ClientFactory
}

// NewRPCBalanceProvider creates a new RPC-backed balance provider
func NewRPCBalanceProvider(registry *ChainRegistry, factory *blockchain.ClientFactory) *RPCBalanceProvider {
	return &RPCBalanceProvider{registry: registry, factory: factory}
}

// GetUserBalances scans every supported mainnet chain for native and
// known token balances. Zero balances are dropped.
func (p *RPCBalanceProvider) GetUserBalances(ctx context.Context, wallet string) ([]entities.Holding, error) {
	if !isValidEVMAddress(wallet) {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrInvalidAddress, wallet)
	}

	var holdings []entities.Holding
	for _, chain := range p.registry.Chains() {
		if chain.Network != entities.NetworkMainnet {
			continue
		}

		client, err := p.factory.GetEVMClient(chain.RPCURL)
		if err != nil {
			logger.Warn(ctx, fmt.Sprintf("skipping chain %d: rpc dial failed: %v", chain.ChainID, err))
			continue
		}

		if balance, err := client.GetBalance(ctx, wallet); err != nil {
			logger.Warn(ctx, fmt.Sprintf("skipping native balance on chain %d: %v", chain.ChainID, err))
		} else if balance.Sign() > 0 {
			holdings = append(holdings, entities.Holding{
				Token:        chain.Symbol,
				Chain:        chain.Name,
				ChainID:      chain.ChainID,
				Balance:      fromSmallestUnit(balance, TokenDecimals),
				TokenAddress: entities.NativeTokenAddress,
			})
		}

		for symbol, tokenAddress := range p.registry.TokenAddressesForChain(chain.ChainID) {
			balance, err := client.GetTokenBalance(ctx, tokenAddress, wallet)
			if err != nil {
				logger.Warn(ctx, fmt.Sprintf("skipping %s balance on chain %d: %v", symbol, chain.ChainID, err))
				continue
			}
			if balance.Sign() == 0 {
				continue
			}
			holdings = append(holdings, entities.Holding{
				Token:        symbol,
				Chain:        chain.Name,
				ChainID:      chain.ChainID,
				Balance:      fromSmallestUnit(balance, TokenDecimals),
				TokenAddress: tokenAddress,
			})
		}
	}
	return holdings, nil
}
