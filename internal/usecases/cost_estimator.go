package usecases

// TransferEstimate is the projected cost and latency of one transfer.
type TransferEstimate struct {
	GasLimit         uint64
	EstimatedGasUSD  float64
	EstimatedTimeSec int
}

// GasOracle prices transfers and bridge hops. Implementations must be
// safe for concurrent use.
type GasOracle interface {
	EstimateDirect(chainID int, token string) TransferEstimate
	EstimateBridge(fromChainID, toChainID int) TransferEstimate
}

type ChainPair struct {
	From int
	To   int
}

// StaticGasOracle prices transfers from fixed per-chain tables. The
// tables are injected at construction so tests can pin them.
type StaticGasOracle struct {
	registry        *ChainRegistry
	gasPriceGwei    map[int]float64
	nativeUSDPrice  map[string]float64
	confirmationSec map[int]int
	bridgeCostUSD   map[ChainPair]float64
	bridgeTimeSec   map[ChainPair]int
}

// StaticGasOracleConfig carries the pricing tables for a StaticGasOracle.
type StaticGasOracleConfig struct {
	GasPriceGwei    map[int]float64
	NativeUSDPrice  map[string]float64
	ConfirmationSec map[int]int
	BridgeCostUSD   map[ChainPair]float64
	BridgeTimeSec   map[ChainPair]int
}

// NewStaticGasOracle creates an oracle over explicit pricing tables.
func NewStaticGasOracle(registry *ChainRegistry, cfg StaticGasOracleConfig) *StaticGasOracle {
	return &StaticGasOracle{
		registry:        registry,
		gasPriceGwei:    cfg.GasPriceGwei,
		nativeUSDPrice:  cfg.NativeUSDPrice,
		confirmationSec: cfg.ConfirmationSec,
		bridgeCostUSD:   cfg.BridgeCostUSD,
		bridgeTimeSec:   cfg.BridgeTimeSec,
	}
}

// DefaultGasOracle returns an oracle loaded with the production tables.
func DefaultGasOracle(registry *ChainRegistry) *StaticGasOracle {
	return NewStaticGasOracle(registry, StaticGasOracleConfig{
		GasPriceGwei: map[int]float64{
			1:     20,
			137:   30,
			42161: 0.1,
			10:    0.001,
			8453:  0.001,
		},
		NativeUSDPrice: map[string]float64{
			"ETH":   2000,
			"MATIC": 0.8,
		},
		ConfirmationSec: map[int]int{
			1:     60,
			137:   5,
			42161: 15,
			10:    15,
			8453:  15,
		},
		BridgeCostUSD: map[ChainPair]float64{
			{137, 1}:     12,
			{42161, 1}:   8,
			{10, 1}:      8,
			{8453, 1}:    8,
			{1, 137}:     6,
			{1, 42161}:   5,
			{1, 10}:      5,
			{1, 8453}:    5,
			{137, 42161}: 4,
			{42161, 137}: 4,
		},
		BridgeTimeSec: map[ChainPair]int{
			{137, 1}:     1200,
			{42161, 1}:   900,
			{10, 1}:      900,
			{8453, 1}:    900,
			{1, 137}:     420,
			{1, 42161}:   300,
			{1, 10}:      300,
			{1, 8453}:    300,
			{137, 42161}: 480,
			{42161, 137}: 480,
		},
	})
}

// EstimateDirect prices a same-chain transfer of token on chainID.
func (o *StaticGasOracle) EstimateDirect(chainID int, token string) TransferEstimate {
	gasLimit := uint64(ERC20TransferGasLimit)
	if o.registry.IsNativeToken(chainID, token) {
		gasLimit = NativeTransferGasLimit
	}
	return TransferEstimate{
		GasLimit:         gasLimit,
		EstimatedGasUSD:  o.gasCostUSD(chainID, gasLimit),
		EstimatedTimeSec: o.confirmationTime(chainID),
	}
}

// EstimateBridge prices a cross-chain hop. Unlisted pairs fall back to
// conservative defaults.
func (o *StaticGasOracle) EstimateBridge(fromChainID, toChainID int) TransferEstimate {
	pair := ChainPair{From: fromChainID, To: toChainID}

	costUSD := DefaultBridgeCostUSD
	if v, ok := o.bridgeCostUSD[pair]; ok {
		costUSD = v
	}
	timeSec := DefaultBridgeTimeSec
	if v, ok := o.bridgeTimeSec[pair]; ok {
		timeSec = v
	}
	return TransferEstimate{
		GasLimit:         BridgeGasLimit,
		EstimatedGasUSD:  costUSD,
		EstimatedTimeSec: timeSec,
	}
}

func (o *StaticGasOracle) gasCostUSD(chainID int, gasLimit uint64) float64 {
	gwei := DefaultGasPriceGwei
	if v, ok := o.gasPriceGwei[chainID]; ok {
		gwei = v
	}

	nativeUSD := FallbackNativeUSDPrice
	if v, ok := o.nativeUSDPrice[o.registry.NativeSymbol(chainID)]; ok {
		nativeUSD = v
	}

	cost := float64(gasLimit) * gwei / 1e9 * nativeUSD
	if cost < MinGasCostUSD {
		return MinGasCostUSD
	}
	return cost
}

func (o *StaticGasOracle) confirmationTime(chainID int) int {
	if v, ok := o.confirmationSec[chainID]; ok {
		return v
	}
	return DefaultConfirmationSec
}
