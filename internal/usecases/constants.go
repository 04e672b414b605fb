package usecases

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// computeSelectorHex computes the 4-byte EVM function selector from a canonical
// function signature and returns it as a "0x"-prefixed hex string.
func computeSelectorHex(sig string) string {
	return "0x" + hex.EncodeToString(crypto.Keccak256([]byte(sig))[:4])
}

// EVM Function Selectors — computed at init from canonical signatures.
var (
	// transfer(address,uint256) -> 0xa9059cbb
	ERC20TransferSelector = computeSelectorHex("transfer(address,uint256)")
)

// Gas limits per transfer kind
const (
	NativeTransferGasLimit = 21000
	ERC20TransferGasLimit  = 65000
	BridgeGasLimit         = 200000
)

// Estimation fallbacks
const (
	MinGasCostUSD          = 0.01
	DefaultGasPriceGwei    = 20.0
	FallbackNativeUSDPrice = 2000.0
	DefaultConfirmationSec = 30
	DefaultBridgeCostUSD   = 20.0
	DefaultBridgeTimeSec   = 600
)

// Validation ceilings
const (
	MaxReasonableGasUSD = 100.0
	MaxAlternatives     = 3
)

// EVM Technical Constants
const (
	EVMWordSizeHex = 64
	TokenDecimals  = 18
)
