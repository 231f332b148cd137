package domain

import (
	"github.com/shopspring/decimal"
)

// FeeQuote is the ephemeral fee breakdown for a single gross flow. It is
// computed per buy/sell and never persisted; the treasury journal records
// only the fee leg.
type FeeQuote struct {
	Gross decimal.Decimal
	Fee   decimal.Decimal
	Net   decimal.Decimal
}
