package entities

import "github.com/volatiletech/null/v8"

// RouteType classifies how value moves from payer to merchant
type RouteType string

const (
	RouteTypeDirect       RouteType = "direct"
	RouteTypeBridge       RouteType = "bridge"
	RouteTypeInsufficient RouteType = "insufficient"
)

// StepType classifies a single hop inside a route
type StepType string

const (
	StepTypeTransfer StepType = "transfer"
	StepTypeBridge   StepType = "bridge"
)

// MerchantTarget is the parsed destination of a payment QR code.
type MerchantTarget struct {
	Address string      `json:"address"`
	ChainID int         `json:"chainId"`
	Token   string      `json:"token"`
	Amount  null.String `json:"amount,omitempty"`
	Network string      `json:"network"`
}

// RouteStep is one hop of a route
type RouteStep struct {
	Type      StepType `json:"type"`
	FromChain int      `json:"fromChain"`
	ToChain   int      `json:"toChain"`
	FromToken string   `json:"fromToken"`
	ToToken   string   `json:"toToken"`
}

// Route is a candidate payment path. Constructed fresh per detection
// call and immutable once returned.
type Route struct {
	RouteType        RouteType   `json:"routeType"`
	FromToken        string      `json:"fromToken"`
	FromChain        string      `json:"fromChain"`
	FromChainID      null.Int    `json:"fromChainId"`
	ToToken          string      `json:"toToken"`
	ToChain          string      `json:"toChain"`
	ToChainID        int         `json:"toChainId"`
	EstimatedGasUSD  float64     `json:"estimatedGasUSD"`
	EstimatedTimeSec int         `json:"estimatedTimeSec"`
	GasLimit         uint64      `json:"gasLimit,omitempty"`
	Color            string      `json:"color,omitempty"`
	Steps            []RouteStep `json:"steps,omitempty"`
	FromTokenAddress string      `json:"fromTokenAddress,omitempty"`
	ToTokenAddress   string      `json:"toTokenAddress,omitempty"`
	AvailableBalance string      `json:"availableBalance,omitempty"`
	RequiredAmount   string      `json:"requiredAmount,omitempty"`
	Error            string      `json:"error,omitempty"`
}

// IsExecutable reports whether a transaction can be built for the route.
// Bridge routes are estimation-only in this system.
func (r *Route) IsExecutable() bool {
	return r.RouteType == RouteTypeDirect
}

// TransactionPayload is a chain-ready transaction for the client to sign.
// Values are decimal strings, data is 0x-prefixed hex.
type TransactionPayload struct {
	To       string `json:"to"`
	Value    string `json:"value"`
	Data     string `json:"data"`
	GasLimit string `json:"gasLimit"`
	ChainID  int    `json:"chainId"`
	Type     string `json:"type"`
}

// RouteValidation is the structured result of an execution-time re-check.
// A failed check is data, not an error.
type RouteValidation struct {
	IsValid        bool   `json:"isValid"`
	Error          string `json:"error,omitempty"`
	CurrentBalance string `json:"currentBalance,omitempty"`
}

// DetectRouteInput is the request body for route detection
type DetectRouteInput struct {
	UserWallet   string    `json:"userWallet" binding:"required"`
	MerchantQR   string    `json:"merchantQR" binding:"required"`
	Amount       string    `json:"amount" binding:"required"`
	UserHoldings []Holding `json:"userHoldings"`
}

// DetectRouteResult is the outcome of route detection
type DetectRouteResult struct {
	RecommendedPath *Route         `json:"recommendedPath"`
	MerchantAddress string         `json:"merchantAddress"`
	MerchantInfo    MerchantTarget `json:"merchantInfo"`
	Alternatives    []*Route       `json:"alternatives"`
}

// PrepareTransactionInput is the request body for transaction preparation
type PrepareTransactionInput struct {
	UserWallet      string `json:"userWallet" binding:"required"`
	MerchantAddress string `json:"merchantAddress" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	Route           Route  `json:"route" binding:"required"`
}

// ValidateRouteInput is the request body for route validation
type ValidateRouteInput struct {
	Route      Route  `json:"route" binding:"required"`
	UserWallet string `json:"userWallet" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}
