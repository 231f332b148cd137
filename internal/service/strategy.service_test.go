package service_test

import (
	"context"
	"testing"

	"vaultcraft/internal/calculator"
	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/domain"
	mock_repository "vaultcraft/internal/repository/mocks"
	"vaultcraft/internal/service"
	mock_service "vaultcraft/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type strategyServiceMocks struct {
	strategyRepository   *mock_repository.MockStrategyRepository
	vaultEventRepository *mock_repository.MockVaultEventRepository
	swapBridge           *mock_service.MockSwapBridgeService
	poolRepository       *mock_repository.MockPoolRepository
	farmRepository       *mock_repository.MockFarmRepository
}

func newStrategyServiceForTest(ctrl *gomock.Controller) (service.StrategyService, strategyServiceMocks) {
	m := strategyServiceMocks{
		strategyRepository:   mock_repository.NewMockStrategyRepository(ctrl),
		vaultEventRepository: mock_repository.NewMockVaultEventRepository(ctrl),
		swapBridge:           mock_service.NewMockSwapBridgeService(ctrl),
		poolRepository:       mock_repository.NewMockPoolRepository(ctrl),
		farmRepository:       mock_repository.NewMockFarmRepository(ctrl),
	}
	handler := service.NewStrategyService(
		nil,
		m.strategyRepository,
		m.vaultEventRepository,
		m.swapBridge,
		m.poolRepository,
		m.farmRepository,
	)
	return handler, m
}

func testVault() *model.Vault {
	return &model.Vault{
		VaultID:         uuid.New(),
		UnderlyingAsset: "USDC",
		CustodyAccount:  "vault:test",
		TotalShares:     decimal.NewFromInt(1000),
		IdleBalance:     decimal.NewFromInt(1000),
	}
}

func testStrategy(vaultID uuid.UUID, farmShares decimal.Decimal) *model.Strategy {
	return &model.Strategy{
		StrategyID:       uuid.New(),
		VaultID:          vaultID,
		PoolID:           "pool-usdc-weth",
		FarmAccount:      "farm:compounder",
		PairAsset:        "WETH",
		InvestBps:        8000,
		MaxSlippageBps:   100,
		LpBalance:        decimal.Zero,
		FarmShareBalance: farmShares,
	}
}

func TestStrategyService_Invest(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps half, joins the pool and farms the receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		strategy := testStrategy(vault.VaultID, decimal.Zero)

		amount := decimal.NewFromInt(1000)
		pairLeg, _ := amount.QuoRem(decimal.NewFromInt(2), 0)
		underlyingLeg := amount.Sub(pairLeg)

		// 1 USDC buys 0.5 WETH at spot; 1% tolerance bounds the swap.
		rate := decimal.RequireFromString("0.5")
		minOut := calculator.ApplyBps(pairLeg.Mul(rate).Floor(), calculator.BpsDenominator-strategy.MaxSlippageBps)
		pairOut := decimal.NewFromInt(248)
		lpOut := decimal.NewFromInt(400)
		farmShares := decimal.NewFromInt(380)

		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(strategy, nil)
		m.swapBridge.EXPECT().
			SpotRate(ctx, "USDC", "WETH").
			Return(rate, nil)
		m.swapBridge.EXPECT().
			SwapExactIn(ctx, vault.CustodyAccount, "USDC", "WETH", pairLeg, minOut).
			Return(pairOut, nil)
		m.poolRepository.EXPECT().
			Join(ctx, strategy.PoolID, vault.CustodyAccount, []domain.AssetAmount{
				{Asset: "USDC", Amount: underlyingLeg},
				{Asset: "WETH", Amount: pairOut},
			}).
			Return(lpOut, nil)
		m.farmRepository.EXPECT().
			Deposit(ctx, strategy.FarmAccount, vault.CustodyAccount, lpOut).
			Return(farmShares, nil)
		m.strategyRepository.EXPECT().
			UpdateBalances(gomock.Nil(), strategy.StrategyID, strategy.LpBalance, strategy.FarmShareBalance.Add(farmShares)).
			Return(nil)
		m.vaultEventRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.VaultEvent{}, nil)

		deployed, err := handler.Invest(ctx, nil, vault, amount)
		require.NoError(t, err)
		require.True(t, deployed.Equal(amount))
	})

	t.Run("fails when no strategy is attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(nil, nil)

		_, err := handler.Invest(ctx, nil, vault, decimal.NewFromInt(1000))
		require.Error(t, err)
	})

	t.Run("rejects an amount too small to split", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(testStrategy(vault.VaultID, decimal.Zero), nil)

		_, err := handler.Invest(ctx, nil, vault, decimal.NewFromInt(1))
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestStrategyService_Divest(t *testing.T) {
	ctx := context.Background()

	t.Run("unwinds farm shares and swaps the pair leg back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		farmShares := decimal.NewFromInt(380)
		strategy := testStrategy(vault.VaultID, farmShares)

		amount := decimal.NewFromInt(950)
		pricePerShare := decimal.NewFromInt(1)
		lpRate := decimal.NewFromInt(2)
		// ceil(950 / 2) = 475 shares wanted, capped at the 380 held.
		lpOut := decimal.NewFromInt(380)
		usdcLeg := decimal.NewFromInt(480)
		wethLeg := decimal.NewFromInt(240)
		backRate := decimal.NewFromInt(2)
		minOut := calculator.ApplyBps(wethLeg.Mul(backRate).Floor(), calculator.BpsDenominator-strategy.MaxSlippageBps)
		swappedBack := decimal.NewFromInt(480)

		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(strategy, nil)
		m.farmRepository.EXPECT().
			PricePerShare(ctx, strategy.FarmAccount).
			Return(pricePerShare, nil)
		m.poolRepository.EXPECT().
			RatePerLpUnit(ctx, strategy.PoolID, "USDC").
			Return(lpRate, nil)
		m.farmRepository.EXPECT().
			Withdraw(ctx, strategy.FarmAccount, vault.CustodyAccount, farmShares).
			Return(lpOut, nil)
		m.poolRepository.EXPECT().
			Exit(ctx, strategy.PoolID, vault.CustodyAccount, lpOut).
			Return([]domain.AssetAmount{
				{Asset: "USDC", Amount: usdcLeg},
				{Asset: "WETH", Amount: wethLeg},
			}, nil)
		m.swapBridge.EXPECT().
			SpotRate(ctx, "WETH", "USDC").
			Return(backRate, nil)
		m.swapBridge.EXPECT().
			SwapExactIn(ctx, vault.CustodyAccount, "WETH", "USDC", wethLeg, minOut).
			Return(swappedBack, nil)
		m.strategyRepository.EXPECT().
			UpdateBalances(gomock.Nil(), strategy.StrategyID, strategy.LpBalance, strategy.FarmShareBalance.Sub(farmShares)).
			Return(nil)
		m.vaultEventRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.VaultEvent{}, nil)

		realized, err := handler.Divest(ctx, nil, vault, amount)
		require.NoError(t, err)
		require.True(t, realized.Equal(decimal.NewFromInt(960)))
	})

	t.Run("aborts on shortfall instead of under-paying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		farmShares := decimal.NewFromInt(380)
		strategy := testStrategy(vault.VaultID, farmShares)

		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(strategy, nil)
		m.farmRepository.EXPECT().
			PricePerShare(ctx, strategy.FarmAccount).
			Return(decimal.NewFromInt(1), nil)
		m.poolRepository.EXPECT().
			RatePerLpUnit(ctx, strategy.PoolID, "USDC").
			Return(decimal.NewFromInt(2), nil)
		m.farmRepository.EXPECT().
			Withdraw(ctx, strategy.FarmAccount, vault.CustodyAccount, farmShares).
			Return(decimal.NewFromInt(380), nil)
		// The pool pays out less than the mark promised.
		m.poolRepository.EXPECT().
			Exit(ctx, strategy.PoolID, vault.CustodyAccount, decimal.NewFromInt(380)).
			Return([]domain.AssetAmount{
				{Asset: "USDC", Amount: decimal.NewFromInt(500)},
			}, nil)

		_, err := handler.Divest(ctx, nil, vault, decimal.NewFromInt(950))
		require.ErrorIs(t, err, domain.ErrStrategyDivestShortfall)
	})

	t.Run("fails when nothing is deployed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		strategy := testStrategy(vault.VaultID, decimal.Zero)

		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(strategy, nil)
		m.farmRepository.EXPECT().
			PricePerShare(ctx, strategy.FarmAccount).
			Return(decimal.NewFromInt(1), nil)
		m.poolRepository.EXPECT().
			RatePerLpUnit(ctx, strategy.PoolID, "USDC").
			Return(decimal.NewFromInt(2), nil)

		_, err := handler.Divest(ctx, nil, vault, decimal.NewFromInt(100))
		require.ErrorIs(t, err, domain.ErrStrategyDivestShortfall)
	})
}

func TestStrategyService_Valuation(t *testing.T) {
	ctx := context.Background()

	t.Run("zero valuation without a strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(nil, nil)

		valuation, err := handler.Valuation(ctx, nil, vault)
		require.NoError(t, err)
		require.True(t, valuation.Total.IsZero())
	})

	t.Run("marks farm shares through price per share and lp rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newStrategyServiceForTest(ctrl)

		vault := testVault()
		strategy := testStrategy(vault.VaultID, decimal.NewFromInt(380))

		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(strategy, nil)
		m.poolRepository.EXPECT().
			RatePerLpUnit(ctx, strategy.PoolID, "USDC").
			Return(decimal.NewFromInt(2), nil)
		m.farmRepository.EXPECT().
			PricePerShare(ctx, strategy.FarmAccount).
			Return(decimal.NewFromInt(1), nil)

		valuation, err := handler.Valuation(ctx, nil, vault)
		require.NoError(t, err)
		require.True(t, valuation.FarmValue.Equal(decimal.NewFromInt(760)))
		require.True(t, valuation.Total.Equal(decimal.NewFromInt(760)))
	})
}

func TestStrategyService_AttachStrategy_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects out-of-range bps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newStrategyServiceForTest(ctrl)

		_, err := handler.AttachStrategy(ctx, service.AttachStrategyInput{
			VaultID:        uuid.New(),
			PoolID:         "pool-usdc-weth",
			FarmAccount:    "farm:compounder",
			PairAsset:      "WETH",
			InvestBps:      10_001,
			MaxSlippageBps: 100,
		})
		require.Error(t, err)

		_, err = handler.AttachStrategy(ctx, service.AttachStrategyInput{
			VaultID:        uuid.New(),
			PoolID:         "pool-usdc-weth",
			FarmAccount:    "farm:compounder",
			PairAsset:      "WETH",
			InvestBps:      8000,
			MaxSlippageBps: 0,
		})
		require.Error(t, err)
	})

	t.Run("rejects missing pool wiring", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newStrategyServiceForTest(ctrl)

		_, err := handler.AttachStrategy(ctx, service.AttachStrategyInput{
			VaultID:        uuid.New(),
			FarmAccount:    "farm:compounder",
			PairAsset:      "WETH",
			InvestBps:      8000,
			MaxSlippageBps: 100,
		})
		require.Error(t, err)
	})
}
