package service

import (
	"context"
	"fmt"

	"vaultcraft/internal/calculator"
	"vaultcraft/internal/domain"
	"vaultcraft/internal/logger"
	"vaultcraft/internal/repository"

	"github.com/shopspring/decimal"
)

// SwapBridgeService converts between two assets through the external
// exchange router. Single-hop only; multi-hop routing is out of scope.
type SwapBridgeService interface {
	// SwapExactIn swaps amountIn of fromAsset held by owner into toAsset.
	// minAmountOut is mandatory: pool price can move between quote and
	// execution, so an unbounded swap is never allowed.
	SwapExactIn(ctx context.Context, owner, fromAsset, toAsset string, amountIn, minAmountOut decimal.Decimal) (decimal.Decimal, error)
	SpotRate(ctx context.Context, fromAsset, toAsset string) (decimal.Decimal, error)
}

type swapBridgeServiceHandler struct {
	ExchangeRouterRepository repository.ExchangeRouterRepository
}

func NewSwapBridgeService(exchangeRouterRepository repository.ExchangeRouterRepository) SwapBridgeService {
	return swapBridgeServiceHandler{
		ExchangeRouterRepository: exchangeRouterRepository,
	}
}

func (h swapBridgeServiceHandler) SwapExactIn(ctx context.Context, owner, fromAsset, toAsset string, amountIn, minAmountOut decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if err := calculator.ValidateAmount(amountIn); err != nil {
		return decimal.Zero, err
	}
	if !minAmountOut.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: a minimum-out bound is required", domain.ErrInvalidAmount)
	}

	amountOut, err := h.ExchangeRouterRepository.SwapExactInputSingle(ctx, repository.SwapExactInputSingleRequest{
		Owner:        owner,
		TokenIn:      fromAsset,
		TokenOut:     toAsset,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("swap %s %s -> %s failed: %w", amountIn, fromAsset, toAsset, err)
	}

	// The router is untrusted: re-check its reported output against the
	// bound before the amount enters any accounting.
	if amountOut.LessThan(minAmountOut) {
		return decimal.Zero, fmt.Errorf("%w: got %s, want at least %s", domain.ErrSlippageExceeded, amountOut, minAmountOut)
	}

	log.Debugw("swapped",
		"fromAsset", fromAsset,
		"toAsset", toAsset,
		"amountIn", amountIn,
		"amountOut", amountOut,
	)

	return amountOut, nil
}

func (h swapBridgeServiceHandler) SpotRate(ctx context.Context, fromAsset, toAsset string) (decimal.Decimal, error) {
	rate, err := h.ExchangeRouterRepository.SpotRate(ctx, fromAsset, toAsset)
	if err != nil {
		return decimal.Zero, err
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive spot rate %s for %s -> %s", rate, fromAsset, toAsset)
	}
	return rate, nil
}
