package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AssetRepository is the fungible-token transfer surface of the chain
// gateway. Custody genuinely moves on the external side; the engine only ever
// observes success or failure, so every call here must happen after the
// operation's internal accounting has been staged in the surrounding
// transaction.
//
// Implementations map the gateway's error codes onto
// domain.ErrInsufficientBalance / domain.ErrInsufficientAllowance.
type AssetRepository interface {
	Transfer(ctx context.Context, asset, from, to string, amount decimal.Decimal) error
	// TransferFrom spends the allowance the owner granted to the platform.
	TransferFrom(ctx context.Context, asset, owner, to string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, asset, owner string) (decimal.Decimal, error)
}
