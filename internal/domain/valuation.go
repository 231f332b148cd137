package domain

import (
	"github.com/shopspring/decimal"
)

// Valuation is a point-in-time mark of a strategy's deployed capital,
// denominated in the vault's underlying asset. It is an estimate: an actual
// divest realizes slippage, so Total is not a guaranteed-realizable amount.
type Valuation struct {
	LpValue   decimal.Decimal
	FarmValue decimal.Decimal
	Total     decimal.Decimal
}

// AssetAmount pairs an asset identity with an amount of its base units.
// Used for pool join/exit legs.
type AssetAmount struct {
	Asset  string
	Amount decimal.Decimal
}
