package usecases

import (
	"sort"

	"aurum-pay.backend/internal/domain/entities"
)

const (
	unknownChainName  = "Unknown"
	defaultRouteColor = "#71727A"
)

// ChainRegistry is the immutable lookup surface for supported chains and
// token deployments. Built once at startup; safe for concurrent reads.
type ChainRegistry struct {
	chains         map[int]entities.Chain
	tokenAddresses map[string]map[int]string
}

// NewChainRegistry builds a registry from explicit tables. Tests inject
// doctored tables through this constructor.
func NewChainRegistry(chains []entities.Chain, tokenAddresses map[string]map[int]string) *ChainRegistry {
	byID := make(map[int]entities.Chain, len(chains))
	for _, c := range chains {
		byID[c.ChainID] = c
	}
	return &ChainRegistry{
		chains:         byID,
		tokenAddresses: tokenAddresses,
	}
}

// DefaultChainRegistry returns the production chain and token tables.
func DefaultChainRegistry() *ChainRegistry {
	chains := []entities.Chain{
		{ChainID: 1, Name: "Ethereum", Symbol: "ETH", Color: "#627EEA", RPCURL: "https://eth.llamarpc.com", Network: entities.NetworkMainnet, ExplorerURL: "https://etherscan.io"},
		{ChainID: 137, Name: "Polygon", Symbol: "MATIC", Color: "#8247E5", RPCURL: "https://polygon.llamarpc.com", Network: entities.NetworkMainnet, ExplorerURL: "https://polygonscan.com"},
		{ChainID: 42161, Name: "Arbitrum", Symbol: "ETH", Color: "#28A0F0", RPCURL: "https://arb1.arbitrum.io/rpc", Network: entities.NetworkMainnet, ExplorerURL: "https://arbiscan.io"},
		{ChainID: 10, Name: "Optimism", Symbol: "ETH", Color: "#FF0420", RPCURL: "https://mainnet.optimism.io", Network: entities.NetworkMainnet, ExplorerURL: "https://optimistic.etherscan.io"},
		{ChainID: 8453, Name: "Base", Symbol: "ETH", Color: "#0052FF", RPCURL: "https://mainnet.base.org", Network: entities.NetworkMainnet, ExplorerURL: "https://basescan.org"},
		{ChainID: 11155111, Name: "Sepolia", Symbol: "ETH", Color: "#627EEA", RPCURL: "https://sepolia.infura.io/v3/", Network: entities.NetworkTestnet, ExplorerURL: "https://sepolia.etherscan.io"},
		{ChainID: 80001, Name: "Mumbai", Symbol: "MATIC", Color: "#8247E5", RPCURL: "https://rpc-mumbai.maticvigil.com", Network: entities.NetworkTestnet, ExplorerURL: "https://mumbai.polygonscan.com"},
		{ChainID: 421614, Name: "Arbitrum Sepolia", Symbol: "ETH", Color: "#28A0F0", RPCURL: "https://sepolia-rollup.arbitrum.io/rpc", Network: entities.NetworkTestnet, ExplorerURL: "https://sepolia.arbiscan.io"},
	}

	tokenAddresses := map[string]map[int]string{
		"USDC": {
			1:     "0xA0b86a33E6441b8435b662303c0f6a4D2F2a4029",
			137:   "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
			42161: "0xFF970A61A04b1cA14834A43f5dE4533eBDDB5CC8",
			10:    "0x7F5c764cBc14f9669B88837ca1490cCa17c31607",
			8453:  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		},
		"USDT": {
			1:     "0xdAC17F958D2ee523a2206206994597C13D831ec7",
			137:   "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
			42161: "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9",
		},
	}

	return NewChainRegistry(chains, tokenAddresses)
}

// Chain returns the descriptor for a chain id
func (r *ChainRegistry) Chain(chainID int) (entities.Chain, bool) {
	c, ok := r.chains[chainID]
	return c, ok
}

// Chains returns all supported chains ordered by chain id
func (r *ChainRegistry) Chains() []entities.Chain {
	out := make([]entities.Chain, 0, len(r.chains))
	for _, c := range r.chains {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}

// ChainName returns the human name, or "Unknown" for unlisted chains
func (r *ChainRegistry) ChainName(chainID int) string {
	if c, ok := r.chains[chainID]; ok {
		return c.Name
	}
	return unknownChainName
}

// Color returns the chain's UI color, with a neutral fallback
func (r *ChainRegistry) Color(chainID int) string {
	if c, ok := r.chains[chainID]; ok {
		return c.Color
	}
	return defaultRouteColor
}

// NativeSymbol returns the chain's gas asset symbol, defaulting to ETH
func (r *ChainRegistry) NativeSymbol(chainID int) string {
	if c, ok := r.chains[chainID]; ok {
		return c.Symbol
	}
	return "ETH"
}

// IsNativeToken reports whether token pays gas on the chain
func (r *ChainRegistry) IsNativeToken(chainID int, token string) bool {
	if c, ok := r.chains[chainID]; ok {
		return c.IsNativeToken(token)
	}
	// Unlisted chain: fall back to the common gas assets.
	return token == "ETH" || token == "MATIC"
}

// TokenAddress returns the deployed contract address of a token on a
// chain. The second return is false when the token is not deployed there.
func (r *ChainRegistry) TokenAddress(symbol string, chainID int) (string, bool) {
	deployments, ok := r.tokenAddresses[symbol]
	if !ok {
		return "", false
	}
	addr, ok := deployments[chainID]
	return addr, ok
}

// TokenAddressesForChain returns symbol -> contract address for one chain
func (r *ChainRegistry) TokenAddressesForChain(chainID int) map[string]string {
	out := make(map[string]string)
	for symbol, deployments := range r.tokenAddresses {
		if addr, ok := deployments[chainID]; ok {
			out[symbol] = addr
		}
	}
	return out
}
