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

type vaultServiceMocks struct {
	vaultRepository      *mock_repository.MockVaultRepository
	strategyRepository   *mock_repository.MockStrategyRepository
	vaultEventRepository *mock_repository.MockVaultEventRepository
	strategyService      *mock_service.MockStrategyService
}

func newVaultServiceForTest(ctrl *gomock.Controller) (service.VaultService, vaultServiceMocks) {
	m := vaultServiceMocks{
		vaultRepository:      mock_repository.NewMockVaultRepository(ctrl),
		strategyRepository:   mock_repository.NewMockStrategyRepository(ctrl),
		vaultEventRepository: mock_repository.NewMockVaultEventRepository(ctrl),
		strategyService:      mock_service.NewMockStrategyService(ctrl),
	}
	handler := service.NewVaultService(
		m.vaultRepository,
		m.strategyRepository,
		m.vaultEventRepository,
		m.strategyService,
	)
	return handler, m
}

func TestVaultService_Deposit(t *testing.T) {
	ctx := context.Background()

	t.Run("bootstrap deposit mints one share per unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:         uuid.New(),
			UnderlyingAsset: "USDC",
			CustodyAccount:  "vault:test",
			TotalShares:     decimal.Zero,
			IdleBalance:     decimal.Zero,
		}
		amount := decimal.NewFromInt(1000)

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{}, nil)
		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(nil, nil)
		m.vaultRepository.EXPECT().
			UpdateBalances(gomock.Nil(), vault.VaultID, gomock.Any(), gomock.Any()).
			Return(nil)
		m.vaultEventRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.VaultEvent{}, nil)

		shares, err := handler.Deposit(ctx, nil, vault, amount)
		require.NoError(t, err)
		require.True(t, shares.Equal(amount))
		require.True(t, vault.TotalShares.Equal(amount))
		require.True(t, vault.IdleBalance.Equal(amount))
	})

	t.Run("later deposits mint proportional shares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		// 1000 shares over 2000 assets: 500 in deposits mints 250 shares.
		vault := &model.Vault{
			VaultID:         uuid.New(),
			UnderlyingAsset: "USDC",
			CustodyAccount:  "vault:test",
			TotalShares:     decimal.NewFromInt(1000),
			IdleBalance:     decimal.NewFromInt(1100),
		}
		amount := decimal.NewFromInt(500)

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{Total: decimal.NewFromInt(900)}, nil)
		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(nil, nil)
		m.vaultRepository.EXPECT().
			UpdateBalances(gomock.Nil(), vault.VaultID, gomock.Any(), gomock.Any()).
			Return(nil)
		m.vaultEventRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.VaultEvent{}, nil)

		shares, err := handler.Deposit(ctx, nil, vault, amount)
		require.NoError(t, err)
		require.True(t, shares.Equal(decimal.NewFromInt(250)))
		require.True(t, vault.TotalShares.Equal(decimal.NewFromInt(1250)))
		require.True(t, vault.IdleBalance.Equal(decimal.NewFromInt(1600)))
	})

	t.Run("deploys the invest ratio into the strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:         uuid.New(),
			UnderlyingAsset: "USDC",
			CustodyAccount:  "vault:test",
			TotalShares:     decimal.NewFromInt(1000),
			IdleBalance:     decimal.NewFromInt(1000),
		}
		amount := decimal.NewFromInt(500)
		investable := calculator.ApplyBps(amount, 8000)

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{}, nil)
		m.strategyRepository.EXPECT().
			GetByVault(gomock.Nil(), vault.VaultID).
			Return(&model.Strategy{
				StrategyID: uuid.New(),
				VaultID:    vault.VaultID,
				InvestBps:  8000,
			}, nil)
		m.strategyService.EXPECT().
			Invest(ctx, gomock.Nil(), vault, investable).
			Return(investable, nil)
		m.vaultRepository.EXPECT().
			UpdateBalances(gomock.Nil(), vault.VaultID, gomock.Any(), gomock.Any()).
			Return(nil)
		m.vaultEventRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.VaultEvent{}, nil)

		shares, err := handler.Deposit(ctx, nil, vault, amount)
		require.NoError(t, err)
		require.True(t, shares.Equal(decimal.NewFromInt(500)))
		// 1000 idle + 500 in - 400 deployed.
		require.True(t, vault.IdleBalance.Equal(decimal.NewFromInt(1100)))
	})

	t.Run("rejects a dust deposit that mints no shares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:         uuid.New(),
			UnderlyingAsset: "USDC",
			CustodyAccount:  "vault:test",
			TotalShares:     decimal.NewFromInt(1000),
			IdleBalance:     decimal.NewFromInt(2000),
		}

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{}, nil)

		_, err := handler.Deposit(ctx, nil, vault, decimal.NewFromInt(1))
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestVaultService_Withdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("idle balance covers the payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:         uuid.New(),
			UnderlyingAsset: "USDC",
			CustodyAccount:  "vault:test",
			TotalShares:     decimal.NewFromInt(1000),
			IdleBalance:     decimal.NewFromInt(1000),
		}

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{}, nil)
		m.vaultRepository.EXPECT().
			UpdateBalances(gomock.Nil(), vault.VaultID, gomock.Any(), gomock.Any()).
			Return(nil)
		m.vaultEventRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.VaultEvent{}, nil)

		amount, err := handler.Withdraw(ctx, nil, vault, decimal.NewFromInt(400))
		require.NoError(t, err)
		require.True(t, amount.Equal(decimal.NewFromInt(400)))
		require.True(t, vault.TotalShares.Equal(decimal.NewFromInt(600)))
		require.True(t, vault.IdleBalance.Equal(decimal.NewFromInt(600)))
	})

	t.Run("divests the shortfall from the strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:         uuid.New(),
			UnderlyingAsset: "USDC",
			CustodyAccount:  "vault:test",
			TotalShares:     decimal.NewFromInt(1000),
			IdleBalance:     decimal.NewFromInt(100),
		}

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{Total: decimal.NewFromInt(900)}, nil)
		// 500 shares redeem 500; idle only holds 100, so 400 comes back
		// from the strategy. The divest realizes 405.
		m.strategyService.EXPECT().
			Divest(ctx, gomock.Nil(), vault, gomock.Any()).
			Return(decimal.NewFromInt(405), nil)
		m.vaultRepository.EXPECT().
			UpdateBalances(gomock.Nil(), vault.VaultID, gomock.Any(), gomock.Any()).
			Return(nil)
		m.vaultEventRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.VaultEvent{}, nil)

		amount, err := handler.Withdraw(ctx, nil, vault, decimal.NewFromInt(500))
		require.NoError(t, err)
		require.True(t, amount.Equal(decimal.NewFromInt(500)))
		require.True(t, vault.IdleBalance.Equal(decimal.NewFromInt(5)))
	})

	t.Run("a divest shortfall aborts the whole withdrawal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:         uuid.New(),
			UnderlyingAsset: "USDC",
			CustodyAccount:  "vault:test",
			TotalShares:     decimal.NewFromInt(1000),
			IdleBalance:     decimal.NewFromInt(100),
		}

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{Total: decimal.NewFromInt(900)}, nil)
		m.strategyService.EXPECT().
			Divest(ctx, gomock.Nil(), vault, gomock.Any()).
			Return(decimal.Zero, domain.ErrStrategyDivestShortfall)

		_, err := handler.Withdraw(ctx, nil, vault, decimal.NewFromInt(500))
		require.ErrorIs(t, err, domain.ErrStrategyDivestShortfall)
	})

	t.Run("cannot redeem more shares than exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:     uuid.New(),
			TotalShares: decimal.NewFromInt(1000),
			IdleBalance: decimal.NewFromInt(1000),
		}

		_, err := handler.Withdraw(ctx, nil, vault, decimal.NewFromInt(1001))
		require.ErrorIs(t, err, domain.ErrInsufficientShares)
	})
}

func TestVaultService_TotalAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("idle plus strategy valuation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newVaultServiceForTest(ctrl)

		vault := &model.Vault{
			VaultID:     uuid.New(),
			IdleBalance: decimal.NewFromInt(100),
		}

		m.strategyService.EXPECT().
			Valuation(ctx, gomock.Nil(), vault).
			Return(&domain.Valuation{Total: decimal.NewFromInt(900)}, nil)

		total, err := handler.TotalAssets(ctx, nil, vault)
		require.NoError(t, err)
		require.True(t, total.Equal(decimal.NewFromInt(1000)))
	})
}
