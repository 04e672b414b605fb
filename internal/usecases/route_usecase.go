package usecases

import (
	"context"
	"fmt"
	"strconv"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
	"aurum-pay.backend/pkg/logger"
	"aurum-pay.backend/pkg/metrics"
)

// RouteUsecase finds how a payer can settle a merchant's payment request
// given the payer's holdings across supported chains.
type RouteUsecase struct {
	registry *ChainRegistry
	oracle   GasOracle
	balances BalanceProvider
	parser   *QRParser
}

// NewRouteUsecase creates a new route usecase
func NewRouteUsecase(registry *ChainRegistry, oracle GasOracle, balances BalanceProvider, parser *QRParser) *RouteUsecase {
	return &RouteUsecase{
		registry: registry,
		oracle:   oracle,
		balances: balances,
		parser:   parser,
	}
}

// DetectRoute parses the merchant QR, loads the payer's holdings when
// the caller did not supply them, and selects a payment route. An
// insufficient-funds outcome is returned as data, not as an error.
func (u *RouteUsecase) DetectRoute(ctx context.Context, input entities.DetectRouteInput) (*entities.DetectRouteResult, error) {
	if !isValidEVMAddress(input.UserWallet) {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrInvalidAddress, input.UserWallet)
	}

	amount, ok := parsePositiveAmount(input.Amount)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domainerrors.ErrInvalidAmount, input.Amount)
	}

	target, err := u.parser.ParseTarget(input.MerchantQR)
	if err != nil {
		return nil, err
	}

	if _, supported := u.registry.Chain(target.ChainID); !supported {
		return nil, fmt.Errorf("%w: chain %d", domainerrors.ErrUnsupportedChain, target.ChainID)
	}

	holdings := input.UserHoldings
	if len(holdings) == 0 {
		holdings, err = u.balances.GetUserBalances(ctx, input.UserWallet)
		if err != nil {
			return nil, err
		}
	}

	chosen, alternatives := u.SelectRoute(holdings, target, amount)

	metrics.RoutesDetected.WithLabelValues(string(chosen.RouteType)).Inc()
	logger.Info(ctx, "route detected",
		zap.String("route_type", string(chosen.RouteType)),
		zap.String("token", target.Token),
		zap.Int("target_chain", target.ChainID),
		zap.Int("alternatives", len(alternatives)),
	)

	return &entities.DetectRouteResult{
		RecommendedPath: chosen,
		MerchantAddress: target.Address,
		MerchantInfo:    *target,
		Alternatives:    alternatives,
	}, nil
}

// SelectRoute picks the cheapest viable route. Same-chain same-token
// transfers always win over bridge hops; bridges are only considered
// when no direct route exists. The second return holds up to three
// non-chosen candidates in discovery order.
func (u *RouteUsecase) SelectRoute(holdings []entities.Holding, target *entities.MerchantTarget, amount float64) (*entities.Route, []*entities.Route) {
	var candidates []*entities.Route

	for i := range holdings {
		h := &holdings[i]
		balance, ok := parsePositiveAmount(h.Balance)
		if !ok || balance < amount {
			continue
		}
		if h.ChainID == target.ChainID && h.Token == target.Token {
			candidates = append(candidates, u.buildDirectRoute(h, target))
		}
	}

	if len(candidates) == 0 {
		for i := range holdings {
			h := &holdings[i]
			balance, ok := parsePositiveAmount(h.Balance)
			if !ok || balance < amount {
				continue
			}
			if h.ChainID == target.ChainID || h.Token != target.Token {
				continue
			}
			if route := u.buildBridgeRoute(h, target); route != nil {
				candidates = append(candidates, route)
			}
		}
	}

	if len(candidates) == 0 {
		return u.insufficientRoute(target, amount), nil
	}

	// Strict comparison keeps the first-discovered route on cost ties.
	chosen := candidates[0]
	for _, c := range candidates[1:] {
		if c.EstimatedGasUSD < chosen.EstimatedGasUSD {
			chosen = c
		}
	}

	alternatives := make([]*entities.Route, 0, MaxAlternatives)
	for _, c := range candidates {
		if c == chosen || len(alternatives) == MaxAlternatives {
			continue
		}
		alternatives = append(alternatives, c)
	}
	return chosen, alternatives
}

// ValidateRoute re-checks a previously detected route at execution time.
// Failed checks come back as data; only infrastructure faults error.
func (u *RouteUsecase) ValidateRoute(ctx context.Context, input entities.ValidateRouteInput) (*entities.RouteValidation, error) {
	route := &input.Route

	if !route.IsExecutable() && route.RouteType != entities.RouteTypeBridge {
		return &entities.RouteValidation{IsValid: false, Error: "route has insufficient funds"}, nil
	}
	if !isValidEVMAddress(input.UserWallet) {
		return &entities.RouteValidation{IsValid: false, Error: "invalid wallet address format"}, nil
	}
	amount, ok := parsePositiveAmount(input.Amount)
	if !ok {
		return &entities.RouteValidation{IsValid: false, Error: "amount must be a positive number"}, nil
	}

	holdings, err := u.balances.GetUserBalances(ctx, input.UserWallet)
	if err != nil {
		return nil, err
	}

	currentBalance := 0.0
	found := false
	for _, h := range holdings {
		if h.ChainID == route.FromChainID.Int && h.Token == route.FromToken {
			currentBalance, _ = parsePositiveAmount(h.Balance)
			found = true
			break
		}
	}
	if !found || currentBalance < amount {
		return &entities.RouteValidation{
			IsValid:        false,
			Error:          "insufficient balance for this route",
			CurrentBalance: strconv.FormatFloat(currentBalance, 'f', -1, 64),
		}, nil
	}

	if route.EstimatedGasUSD > MaxReasonableGasUSD {
		return &entities.RouteValidation{IsValid: false, Error: "estimated gas cost is unreasonably high"}, nil
	}

	return &entities.RouteValidation{
		IsValid:        true,
		CurrentBalance: strconv.FormatFloat(currentBalance, 'f', -1, 64),
	}, nil
}

func (u *RouteUsecase) buildDirectRoute(h *entities.Holding, target *entities.MerchantTarget) *entities.Route {
	estimate := u.oracle.EstimateDirect(target.ChainID, target.Token)
	chainName := u.registry.ChainName(target.ChainID)

	tokenAddress := h.TokenAddress
	if tokenAddress == "" {
		if addr, ok := u.registry.TokenAddress(h.Token, h.ChainID); ok {
			tokenAddress = addr
		} else {
			tokenAddress = entities.NativeTokenAddress
		}
	}

	return &entities.Route{
		RouteType:        entities.RouteTypeDirect,
		FromToken:        h.Token,
		FromChain:        chainName,
		FromChainID:      null.IntFrom(h.ChainID),
		ToToken:          target.Token,
		ToChain:          chainName,
		ToChainID:        target.ChainID,
		EstimatedGasUSD:  estimate.EstimatedGasUSD,
		EstimatedTimeSec: estimate.EstimatedTimeSec,
		GasLimit:         estimate.GasLimit,
		Color:            u.registry.Color(target.ChainID),
		Steps: []entities.RouteStep{
			{
				Type:      entities.StepTypeTransfer,
				FromChain: h.ChainID,
				ToChain:   target.ChainID,
				FromToken: h.Token,
				ToToken:   target.Token,
			},
		},
		FromTokenAddress: tokenAddress,
		ToTokenAddress:   tokenAddress,
		AvailableBalance: h.Balance,
	}
}

// buildBridgeRoute returns nil when either side of the hop lacks a known
// token deployment.
func (u *RouteUsecase) buildBridgeRoute(h *entities.Holding, target *entities.MerchantTarget) *entities.Route {
	fromTokenAddress := h.TokenAddress
	if fromTokenAddress == "" {
		addr, ok := u.registry.TokenAddress(h.Token, h.ChainID)
		if !ok {
			return nil
		}
		fromTokenAddress = addr
	}
	toTokenAddress, ok := u.registry.TokenAddress(target.Token, target.ChainID)
	if !ok {
		return nil
	}

	estimate := u.oracle.EstimateBridge(h.ChainID, target.ChainID)

	return &entities.Route{
		RouteType:        entities.RouteTypeBridge,
		FromToken:        h.Token,
		FromChain:        u.registry.ChainName(h.ChainID),
		FromChainID:      null.IntFrom(h.ChainID),
		ToToken:          target.Token,
		ToChain:          u.registry.ChainName(target.ChainID),
		ToChainID:        target.ChainID,
		EstimatedGasUSD:  estimate.EstimatedGasUSD,
		EstimatedTimeSec: estimate.EstimatedTimeSec,
		GasLimit:         estimate.GasLimit,
		Color:            u.registry.Color(h.ChainID),
		Steps: []entities.RouteStep{
			{
				Type:      entities.StepTypeBridge,
				FromChain: h.ChainID,
				ToChain:   target.ChainID,
				FromToken: h.Token,
				ToToken:   target.Token,
			},
			{
				Type:      entities.StepTypeTransfer,
				FromChain: target.ChainID,
				ToChain:   target.ChainID,
				FromToken: target.Token,
				ToToken:   target.Token,
			},
		},
		FromTokenAddress: fromTokenAddress,
		ToTokenAddress:   toTokenAddress,
		AvailableBalance: h.Balance,
	}
}

func (u *RouteUsecase) insufficientRoute(target *entities.MerchantTarget, amount float64) *entities.Route {
	amountStr := strconv.FormatFloat(amount, 'f', -1, 64)
	return &entities.Route{
		RouteType:        entities.RouteTypeInsufficient,
		FromToken:        "N/A",
		FromChain:        "N/A",
		ToToken:          target.Token,
		ToChain:          u.registry.ChainName(target.ChainID),
		ToChainID:        target.ChainID,
		Color:            "#FF6B6B",
		AvailableBalance: "0",
		RequiredAmount:   amountStr,
		Error:            fmt.Sprintf("Insufficient %s balance across all chains. Required: %s %s", target.Token, amountStr, target.Token),
	}
}
