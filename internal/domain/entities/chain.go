package entities

// NetworkClass separates production chains from test networks
type NetworkClass string

const (
	NetworkMainnet NetworkClass = "mainnet"
	NetworkTestnet NetworkClass = "testnet"
)

// NativeTokenAddress is the sentinel contract address for a chain's
// gas-paying asset.
const NativeTokenAddress = "0x0000000000000000000000000000000000000000"

// Chain is a static descriptor of a supported network. Loaded once at
// startup and never mutated afterwards.
type Chain struct {
	ChainID     int          `json:"chainId"`
	Name        string       `json:"name"`
	Symbol      string       `json:"symbol"`
	Color       string       `json:"color"`
	RPCURL      string       `json:"rpcUrl"`
	Network     NetworkClass `json:"network"`
	ExplorerURL string       `json:"explorerUrl,omitempty"`
}

// IsNativeToken reports whether symbol is this chain's gas-paying asset.
func (c *Chain) IsNativeToken(symbol string) bool {
	return symbol == c.Symbol
}

// Token carries symbol-level metadata. Decimals is recorded so a future
// per-token conversion can replace the uniform 18-decimals assumption.
type Token struct {
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Decimals     int    `json:"decimals"`
	IsStablecoin bool   `json:"isStablecoin"`
}

// Holding is a user's balance of one token on one chain. Produced by a
// balance provider; read-only input to route selection.
type Holding struct {
	Token        string `json:"token"`
	Chain        string `json:"chain,omitempty"`
	ChainID      int    `json:"chainId"`
	Balance      string `json:"balance"`
	TokenAddress string `json:"address"`
}

// IsNative reports whether the holding is the chain's gas asset rather
// than a token contract balance.
func (h *Holding) IsNative() bool {
	return h.TokenAddress == "" || h.TokenAddress == NativeTokenAddress
}
