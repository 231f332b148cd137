package service_test

import (
	"context"
	"errors"
	"testing"

	"vaultcraft/internal/domain"
	mock_repository "vaultcraft/internal/repository/mocks"
	"vaultcraft/internal/service"
	mock_service "vaultcraft/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerServiceMocks struct {
	vaultRepository      *mock_repository.MockVaultRepository
	treasuryRepository   *mock_repository.MockTreasuryRepository
	assetRepository      *mock_repository.MockAssetRepository
	accessGateRepository *mock_repository.MockAccessGateRepository
	vaultService         *mock_service.MockVaultService
	positionService      *mock_service.MockPositionService
}

func newRouterServiceForTest(ctrl *gomock.Controller, feeBps int32) (service.RouterService, routerServiceMocks) {
	m := routerServiceMocks{
		vaultRepository:      mock_repository.NewMockVaultRepository(ctrl),
		treasuryRepository:   mock_repository.NewMockTreasuryRepository(ctrl),
		assetRepository:      mock_repository.NewMockAssetRepository(ctrl),
		accessGateRepository: mock_repository.NewMockAccessGateRepository(ctrl),
		vaultService:         mock_service.NewMockVaultService(ctrl),
		positionService:      mock_service.NewMockPositionService(ctrl),
	}
	handler := service.NewRouterService(
		nil,
		feeBps,
		"treasury",
		m.vaultRepository,
		m.treasuryRepository,
		m.assetRepository,
		m.accessGateRepository,
		m.vaultService,
		m.positionService,
	)
	return handler, m
}

func TestRouterService_Buy(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects callers the gate denies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newRouterServiceForTest(ctrl, 200)

		m.accessGateRepository.EXPECT().
			IsEligible(ctx, "mallory", gomock.Nil()).
			Return(false, nil)

		_, err := handler.Buy(ctx, service.BuyInput{
			Caller:      "mallory",
			Asset:       "USDC",
			GrossAmount: decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrNotEligible)
	})

	t.Run("rejects an asset with no vault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newRouterServiceForTest(ctrl, 200)

		m.accessGateRepository.EXPECT().
			IsEligible(ctx, "alice", gomock.Nil()).
			Return(true, nil)
		m.vaultRepository.EXPECT().
			GetByAsset(gomock.Nil(), "DOGE").
			Return(nil, domain.ErrUnknownVault)

		_, err := handler.Buy(ctx, service.BuyInput{
			Caller:      "alice",
			Asset:       "DOGE",
			GrossAmount: decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrUnknownVault)
	})

	t.Run("rejects a gross amount the fee consumes entirely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newRouterServiceForTest(ctrl, 10_000)

		_, err := handler.Buy(ctx, service.BuyInput{
			Caller:      "alice",
			Asset:       "USDC",
			GrossAmount: decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("rejects non-positive and fractional amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newRouterServiceForTest(ctrl, 200)

		_, err := handler.Buy(ctx, service.BuyInput{
			Caller:      "alice",
			Asset:       "USDC",
			GrossAmount: decimal.Zero,
		})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = handler.Buy(ctx, service.BuyInput{
			Caller:      "alice",
			Asset:       "USDC",
			GrossAmount: decimal.RequireFromString("99.5"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestRouterService_Sell(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive share counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newRouterServiceForTest(ctrl, 200)

		_, err := handler.Sell(ctx, service.SellInput{
			Caller:     "alice",
			PositionID: 1,
			Shares:     decimal.Zero,
		})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("unknown position fails before any accounting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newRouterServiceForTest(ctrl, 200)

		m.positionService.EXPECT().
			Get(gomock.Nil(), int64(404)).
			Return(nil, errors.New("position 404 not found"))

		_, err := handler.Sell(ctx, service.SellInput{
			Caller:     "alice",
			PositionID: 404,
			Shares:     decimal.NewFromInt(10),
		})
		require.Error(t, err)
	})
}
