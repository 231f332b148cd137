package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// FarmRepository wraps the external auto-compounding farm. Farm shares
// appreciate against LP units as the farm compounds; PricePerShare is the
// current LP-per-farm-share ratio.
type FarmRepository interface {
	Deposit(ctx context.Context, farmAccount, owner string, lpUnits decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, farmAccount, owner string, farmShares decimal.Decimal) (decimal.Decimal, error)
	PricePerShare(ctx context.Context, farmAccount string) (decimal.Decimal, error)
}
