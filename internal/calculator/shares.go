package calculator

import (
	"fmt"
	"vaultcraft/internal/domain"

	"github.com/shopspring/decimal"
)

// Share and fee math shared by the vault and router services. All amounts are
// whole base units of the underlying asset; every division floors, which
// always rounds in the vault's favor (anti-inflation rounding: a depositor
// can never mint shares worth more than their deposit, a withdrawer can never
// redeem more than their shares are worth).

const BpsDenominator = 10_000

// ValidateAmount rejects zero, negative, and fractional base-unit amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.IsInteger() {
		return fmt.Errorf("%w: got %s", domain.ErrInvalidAmount, amount.String())
	}
	return nil
}

// SharesForDeposit returns the shares minted for depositing amount into a
// vault currently holding totalAssets against totalShares. The first deposit
// bootstraps 1:1; later deposits mint floor(amount * totalShares / totalAssets).
func SharesForDeposit(amount, totalShares, totalAssets decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if totalShares.IsZero() {
		return amount, nil
	}
	if !totalAssets.IsPositive() {
		return decimal.Zero, fmt.Errorf("vault has %s shares against %s assets: share price undefined", totalShares, totalAssets)
	}
	shares, _ := amount.Mul(totalShares).QuoRem(totalAssets, 0)
	return shares, nil
}

// AssetsForShares returns the underlying owed for redeeming shares:
// floor(shares * totalAssets / totalShares). Floors against the withdrawer.
func AssetsForShares(shares, totalShares, totalAssets decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(shares); err != nil {
		return decimal.Zero, err
	}
	if shares.GreaterThan(totalShares) {
		return decimal.Zero, fmt.Errorf("%w: redeeming %s of %s total", domain.ErrInsufficientShares, shares, totalShares)
	}
	amount, _ := shares.Mul(totalAssets).QuoRem(totalShares, 0)
	return amount, nil
}

// SharePrice returns totalAssets / totalShares, or 1 for an empty vault.
func SharePrice(totalShares, totalAssets decimal.Decimal) decimal.Decimal {
	if totalShares.IsZero() {
		return decimal.NewFromInt(1)
	}
	return totalAssets.Div(totalShares)
}

// NewFeeQuote splits a gross flow into the protocol fee and the net amount:
// fee = floor(gross * feeBps / 10_000). Charged on each gross flow
// independently; a buy-then-sell round trip pays the fee twice.
func NewFeeQuote(gross decimal.Decimal, feeBps int32) (domain.FeeQuote, error) {
	if err := ValidateAmount(gross); err != nil {
		return domain.FeeQuote{}, err
	}
	if feeBps < 0 || feeBps > BpsDenominator {
		return domain.FeeQuote{}, fmt.Errorf("fee bps out of range: %d", feeBps)
	}
	fee, _ := gross.Mul(decimal.NewFromInt32(feeBps)).QuoRem(decimal.NewFromInt(BpsDenominator), 0)
	return domain.FeeQuote{
		Gross: gross,
		Fee:   fee,
		Net:   gross.Sub(fee),
	}, nil
}

// ApplyBps returns floor(amount * bps / 10_000). Used for the invest fraction
// and for deriving swap minimum-out bounds from a quoted rate.
func ApplyBps(amount decimal.Decimal, bps int32) decimal.Decimal {
	out, _ := amount.Mul(decimal.NewFromInt32(bps)).QuoRem(decimal.NewFromInt(BpsDenominator), 0)
	return out
}
