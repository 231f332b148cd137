package repository

import (
	"context"

	"vaultcraft/internal/domain"

	"github.com/shopspring/decimal"
)

// PoolRepository wraps the external liquidity pool (a Balancer-style
// weighted pool addressed by pool id). Join/exit move custody; the read
// methods are fresh on-demand quotes for valuation and minimum-out bounds.
type PoolRepository interface {
	Join(ctx context.Context, poolID, owner string, assetsIn []domain.AssetAmount) (decimal.Decimal, error)
	Exit(ctx context.Context, poolID, owner string, lpUnitsIn decimal.Decimal) ([]domain.AssetAmount, error)
	// RatePerLpUnit values one LP unit in the given asset at the pool's
	// current spot ratio. A point-in-time mark, not a realizable price.
	RatePerLpUnit(ctx context.Context, poolID, asset string) (decimal.Decimal, error)
}
