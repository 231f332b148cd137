package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

type SwapExactInputSingleRequest struct {
	Owner        string
	TokenIn      string
	TokenOut     string
	AmountIn     decimal.Decimal
	MinAmountOut decimal.Decimal
}

// ExchangeRouterRepository wraps the external exchange router. Single-hop
// conversions only; implementations surface domain.ErrRouteUnavailable when
// no direct pool path is registered for the pair and
// domain.ErrSlippageExceeded when the realized output falls below the
// caller's minimum-out bound.
type ExchangeRouterRepository interface {
	SwapExactInputSingle(ctx context.Context, req SwapExactInputSingleRequest) (decimal.Decimal, error)
	// SpotRate quotes tokenOut per one tokenIn at the current pool price.
	// Quotes are never cached across calls: pool price can move between
	// quote and execution, which is exactly why minimum-out bounds exist.
	SpotRate(ctx context.Context, tokenIn, tokenOut string) (decimal.Decimal, error)
}
