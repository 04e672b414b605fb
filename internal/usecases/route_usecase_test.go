package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
)

type stubBalanceProvider struct {
	getUserBalances func(ctx context.Context, wallet string) ([]entities.Holding, error)
}

func (s *stubBalanceProvider) GetUserBalances(ctx context.Context, wallet string) ([]entities.Holding, error) {
	return s.getUserBalances(ctx, wallet)
}

func newTestRouteUsecase(balances BalanceProvider) *RouteUsecase {
	registry := DefaultChainRegistry()
	if balances == nil {
		balances = NewMockBalanceProvider(registry)
	}
	return NewRouteUsecase(registry, DefaultGasOracle(registry), balances, NewQRParser(registry))
}

func demoHoldings() []entities.Holding {
	return []entities.Holding{
		{Token: "USDC", ChainID: 137, Balance: "110.52", TokenAddress: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"},
		{Token: "ETH", ChainID: 1, Balance: "0.12", TokenAddress: entities.NativeTokenAddress},
		{Token: "USDC", ChainID: 42161, Balance: "25.00", TokenAddress: "0xFF970A61A04b1cA14834A43f5dE4533eBDDB5CC8"},
		{Token: "MATIC", ChainID: 137, Balance: "50.0", TokenAddress: entities.NativeTokenAddress},
	}
}

func TestDetectRoute_DirectSameChain(t *testing.T) {
	u := newTestRouteUsecase(nil)

	result, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet:   testUserWallet,
		MerchantQR:   "ethereum:" + testMerchantWallet + "@137?token=USDC",
		Amount:       "50",
		UserHoldings: demoHoldings(),
	})
	require.NoError(t, err)
	require.NotNil(t, result.RecommendedPath)

	route := result.RecommendedPath
	assert.Equal(t, entities.RouteTypeDirect, route.RouteType)
	assert.Equal(t, "Polygon", route.FromChain)
	assert.Equal(t, 137, route.FromChainID.Int)
	assert.Equal(t, 137, route.ToChainID)
	assert.Equal(t, 5, route.EstimatedTimeSec)
	assert.Equal(t, "#8247E5", route.Color)
	assert.Equal(t, testMerchantWallet, result.MerchantAddress)
	require.Len(t, route.Steps, 1)
	assert.Equal(t, entities.StepTypeTransfer, route.Steps[0].Type)
}

func TestDetectRoute_DirectBeatsBridgeEvenWhenCheaperBridgeExists(t *testing.T) {
	u := newTestRouteUsecase(nil)

	// Direct transfer on mainnet costs $2.60; a Polygon bridge would not
	// be cheaper, but even a cheap one must never displace a direct route.
	result, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet: testUserWallet,
		MerchantQR: "ethereum:" + testMerchantWallet + "@1?token=USDC",
		Amount:     "10",
		UserHoldings: []entities.Holding{
			{Token: "USDC", ChainID: 137, Balance: "500", TokenAddress: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"},
			{Token: "USDC", ChainID: 1, Balance: "15", TokenAddress: "0xA0b86a33E6441b8435b662303c0f6a4D2F2a4029"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entities.RouteTypeDirect, result.RecommendedPath.RouteType)
	assert.Equal(t, 1, result.RecommendedPath.FromChainID.Int)
	assert.Empty(t, result.Alternatives)
}

func TestDetectRoute_BridgeWhenNoDirect(t *testing.T) {
	u := newTestRouteUsecase(nil)

	result, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet: testUserWallet,
		MerchantQR: "ethereum:" + testMerchantWallet + "@1?token=USDC",
		Amount:     "25",
		UserHoldings: []entities.Holding{
			{Token: "USDC", ChainID: 137, Balance: "110.52", TokenAddress: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"},
		},
	})
	require.NoError(t, err)

	route := result.RecommendedPath
	assert.Equal(t, entities.RouteTypeBridge, route.RouteType)
	assert.Equal(t, 137, route.FromChainID.Int)
	assert.Equal(t, 1, route.ToChainID)
	assert.Equal(t, "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", route.FromTokenAddress)
	assert.Equal(t, "0xA0b86a33E6441b8435b662303c0f6a4D2F2a4029", route.ToTokenAddress)
	require.Len(t, route.Steps, 2)
	assert.Equal(t, entities.StepTypeBridge, route.Steps[0].Type)
	assert.Equal(t, entities.StepTypeTransfer, route.Steps[1].Type)
}

func TestDetectRoute_BridgePicksCheapestHop(t *testing.T) {
	u := newTestRouteUsecase(nil)

	result, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet: testUserWallet,
		MerchantQR: "ethereum:" + testMerchantWallet + "@1?token=USDC",
		Amount:     "25",
		UserHoldings: []entities.Holding{
			{Token: "USDC", ChainID: 137, Balance: "110.52"},
			{Token: "USDC", ChainID: 42161, Balance: "90"},
			{Token: "USDC", ChainID: 10, Balance: "80"},
			{Token: "USDC", ChainID: 8453, Balance: "70"},
		},
	})
	require.NoError(t, err)

	// Arbitrum, Optimism and Base all bridge to mainnet for $8; the
	// first discovered of the tied candidates wins.
	assert.Equal(t, 42161, result.RecommendedPath.FromChainID.Int)
	require.Len(t, result.Alternatives, 3)
	assert.Equal(t, 137, result.Alternatives[0].FromChainID.Int)
	assert.Equal(t, 10, result.Alternatives[1].FromChainID.Int)
	assert.Equal(t, 8453, result.Alternatives[2].FromChainID.Int)
}

func TestDetectRoute_InsufficientAcrossAllChains(t *testing.T) {
	u := newTestRouteUsecase(nil)

	result, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet:   testUserWallet,
		MerchantQR:   "ethereum:" + testMerchantWallet + "@137?token=USDC",
		Amount:       "100000",
		UserHoldings: demoHoldings(),
	})
	require.NoError(t, err)

	route := result.RecommendedPath
	assert.Equal(t, entities.RouteTypeInsufficient, route.RouteType)
	assert.Equal(t, "N/A", route.FromChain)
	assert.False(t, route.FromChainID.Valid)
	assert.Equal(t, "0", route.AvailableBalance)
	assert.Equal(t, "100000", route.RequiredAmount)
	assert.Contains(t, route.Error, "Insufficient USDC balance")
	assert.Equal(t, "#FF6B6B", route.Color)
	assert.Empty(t, result.Alternatives)
}

func TestDetectRoute_NoBridgeWithoutKnownDeployment(t *testing.T) {
	u := newTestRouteUsecase(nil)

	// USDT has no Base deployment in the token table, so the only
	// holding cannot bridge there.
	result, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet: testUserWallet,
		MerchantQR: "ethereum:" + testMerchantWallet + "@8453?token=USDT",
		Amount:     "10",
		UserHoldings: []entities.Holding{
			{Token: "USDT", ChainID: 1, Balance: "500", TokenAddress: "0xdAC17F958D2ee523a2206206994597C13D831ec7"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entities.RouteTypeInsufficient, result.RecommendedPath.RouteType)
}

func TestDetectRoute_FetchesHoldingsWhenNotSupplied(t *testing.T) {
	called := false
	u := newTestRouteUsecase(&stubBalanceProvider{
		getUserBalances: func(_ context.Context, wallet string) ([]entities.Holding, error) {
			called = true
			assert.Equal(t, testUserWallet, wallet)
			return demoHoldings(), nil
		},
	})

	result, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet: testUserWallet,
		MerchantQR: "ethereum:" + testMerchantWallet + "@137?token=USDC",
		Amount:     "50",
	})
	require.NoError(t, err)

	assert.True(t, called)
	assert.Equal(t, entities.RouteTypeDirect, result.RecommendedPath.RouteType)
}

func TestDetectRoute_BalanceProviderError(t *testing.T) {
	providerErr := errors.New("rpc unavailable")
	u := newTestRouteUsecase(&stubBalanceProvider{
		getUserBalances: func(context.Context, string) ([]entities.Holding, error) {
			return nil, providerErr
		},
	})

	_, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet: testUserWallet,
		MerchantQR: "ethereum:" + testMerchantWallet,
		Amount:     "1",
	})
	assert.ErrorIs(t, err, providerErr)
}

func TestDetectRoute_InputValidation(t *testing.T) {
	u := newTestRouteUsecase(nil)

	_, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet: "not-an-address",
		MerchantQR: "ethereum:" + testMerchantWallet,
		Amount:     "1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAddress)

	for _, amount := range []string{"0", "-5", "abc", ""} {
		_, err := u.DetectRoute(context.Background(), entities.DetectRouteInput{
			UserWallet:   testUserWallet,
			MerchantQR:   "ethereum:" + testMerchantWallet,
			Amount:       amount,
			UserHoldings: demoHoldings(),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount, "amount: %q", amount)
	}

	_, err = u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet:   testUserWallet,
		MerchantQR:   "ethereum:" + testMerchantWallet + "@999999?token=USDC",
		Amount:       "1",
		UserHoldings: demoHoldings(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedChain)

	_, err = u.DetectRoute(context.Background(), entities.DetectRouteInput{
		UserWallet:   testUserWallet,
		MerchantQR:   "garbage",
		Amount:       "1",
		UserHoldings: demoHoldings(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrParseFailed)
}

func TestValidateRoute(t *testing.T) {
	u := newTestRouteUsecase(&stubBalanceProvider{
		getUserBalances: func(context.Context, string) ([]entities.Holding, error) {
			return demoHoldings(), nil
		},
	})

	goodRoute := entities.Route{
		RouteType:       entities.RouteTypeDirect,
		FromToken:       "USDC",
		FromChainID:     null.IntFrom(137),
		ToChainID:       137,
		EstimatedGasUSD: 0.01,
	}

	t.Run("valid", func(t *testing.T) {
		v, err := u.ValidateRoute(context.Background(), entities.ValidateRouteInput{
			Route: goodRoute, UserWallet: testUserWallet, Amount: "50",
		})
		require.NoError(t, err)
		assert.True(t, v.IsValid)
		assert.Equal(t, "110.52", v.CurrentBalance)
	})

	t.Run("insufficient route type", func(t *testing.T) {
		route := goodRoute
		route.RouteType = entities.RouteTypeInsufficient
		v, err := u.ValidateRoute(context.Background(), entities.ValidateRouteInput{
			Route: route, UserWallet: testUserWallet, Amount: "50",
		})
		require.NoError(t, err)
		assert.False(t, v.IsValid)
	})

	t.Run("bad wallet", func(t *testing.T) {
		v, err := u.ValidateRoute(context.Background(), entities.ValidateRouteInput{
			Route: goodRoute, UserWallet: "0x123", Amount: "50",
		})
		require.NoError(t, err)
		assert.False(t, v.IsValid)
	})

	t.Run("bad amount", func(t *testing.T) {
		v, err := u.ValidateRoute(context.Background(), entities.ValidateRouteInput{
			Route: goodRoute, UserWallet: testUserWallet, Amount: "-1",
		})
		require.NoError(t, err)
		assert.False(t, v.IsValid)
	})

	t.Run("balance dropped below amount", func(t *testing.T) {
		v, err := u.ValidateRoute(context.Background(), entities.ValidateRouteInput{
			Route: goodRoute, UserWallet: testUserWallet, Amount: "200",
		})
		require.NoError(t, err)
		assert.False(t, v.IsValid)
		assert.Equal(t, "110.52", v.CurrentBalance)
	})

	t.Run("gas too high", func(t *testing.T) {
		route := goodRoute
		route.EstimatedGasUSD = 150
		v, err := u.ValidateRoute(context.Background(), entities.ValidateRouteInput{
			Route: route, UserWallet: testUserWallet, Amount: "50",
		})
		require.NoError(t, err)
		assert.False(t, v.IsValid)
	})

	t.Run("provider failure surfaces as error", func(t *testing.T) {
		providerErr := errors.New("rpc unavailable")
		failing := newTestRouteUsecase(&stubBalanceProvider{
			getUserBalances: func(context.Context, string) ([]entities.Holding, error) {
				return nil, providerErr
			},
		})
		_, err := failing.ValidateRoute(context.Background(), entities.ValidateRouteInput{
			Route: goodRoute, UserWallet: testUserWallet, Amount: "50",
		})
		assert.ErrorIs(t, err, providerErr)
	})
}

func TestSelectRoute_TieKeepsFirstCandidate(t *testing.T) {
	u := newTestRouteUsecase(nil)
	target := &entities.MerchantTarget{Address: testMerchantWallet, ChainID: 137, Token: "USDC"}

	chosen, alternatives := u.SelectRoute([]entities.Holding{
		{Token: "USDC", ChainID: 137, Balance: "60"},
		{Token: "USDC", ChainID: 137, Balance: "80"},
	}, target, 50)

	assert.Equal(t, "60", chosen.AvailableBalance)
	require.Len(t, alternatives, 1)
	assert.Equal(t, "80", alternatives[0].AvailableBalance)
}
