package service_test

import (
	"context"
	"testing"

	"vaultcraft/internal/domain"
	"vaultcraft/internal/repository"
	mock_repository "vaultcraft/internal/repository/mocks"
	"vaultcraft/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSwapBridge_SwapExactIn(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the bound through to the router", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRouter := mock_repository.NewMockExchangeRouterRepository(ctrl)
		handler := service.NewSwapBridgeService(exchangeRouter)

		amountIn := decimal.NewFromInt(500)
		minOut := decimal.NewFromInt(247)

		exchangeRouter.EXPECT().
			SwapExactInputSingle(ctx, repository.SwapExactInputSingleRequest{
				Owner:        "vault:abc",
				TokenIn:      "USDC",
				TokenOut:     "WETH",
				AmountIn:     amountIn,
				MinAmountOut: minOut,
			}).
			Return(decimal.NewFromInt(248), nil)

		out, err := handler.SwapExactIn(ctx, "vault:abc", "USDC", "WETH", amountIn, minOut)
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(248)))
	})

	t.Run("rejects a missing minimum-out bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRouter := mock_repository.NewMockExchangeRouterRepository(ctrl)
		handler := service.NewSwapBridgeService(exchangeRouter)

		_, err := handler.SwapExactIn(ctx, "vault:abc", "USDC", "WETH", decimal.NewFromInt(500), decimal.Zero)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("rejects router output below the bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRouter := mock_repository.NewMockExchangeRouterRepository(ctrl)
		handler := service.NewSwapBridgeService(exchangeRouter)

		exchangeRouter.EXPECT().
			SwapExactInputSingle(ctx, gomock.Any()).
			Return(decimal.NewFromInt(246), nil)

		_, err := handler.SwapExactIn(ctx, "vault:abc", "USDC", "WETH", decimal.NewFromInt(500), decimal.NewFromInt(247))
		require.ErrorIs(t, err, domain.ErrSlippageExceeded)
	})
}

func TestSwapBridge_SpotRate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a non-positive rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRouter := mock_repository.NewMockExchangeRouterRepository(ctrl)
		handler := service.NewSwapBridgeService(exchangeRouter)

		exchangeRouter.EXPECT().
			SpotRate(ctx, "USDC", "WETH").
			Return(decimal.Zero, nil)

		_, err := handler.SpotRate(ctx, "USDC", "WETH")
		require.Error(t, err)
	})
}
