package calculator

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// SharePricePoint is one observation of a vault's share price, taken from the
// vault event journal.
type SharePricePoint struct {
	Price decimal.Decimal
	At    time.Time
}

type VaultMetrics struct {
	// RealizedApy annualizes the share price change between the first and
	// last observation. Nil with fewer than two observations.
	RealizedApy *float64 `json:"realizedApy"`
	// Volatility is the sample standard deviation of per-observation returns.
	Volatility *float64 `json:"volatility"`
	// MaxDrawdown is the largest peak-to-trough share price decline.
	MaxDrawdown *float64 `json:"maxDrawdown"`
	Samples     int      `json:"samples"`
}

const hoursPerYear = 24 * 365

// ComputeVaultMetrics derives realized performance from a share price series.
// Points must be in chronological order.
func ComputeVaultMetrics(points []SharePricePoint) (*VaultMetrics, error) {
	out := &VaultMetrics{Samples: len(points)}
	if len(points) < 2 {
		return out, nil
	}

	first, last := points[0], points[len(points)-1]
	if !first.Price.IsPositive() {
		return nil, fmt.Errorf("non-positive starting share price %s", first.Price)
	}
	elapsed := last.At.Sub(first.At)
	if elapsed > 0 {
		growth := last.Price.Div(first.Price).InexactFloat64() - 1
		apy := growth * (hoursPerYear / elapsed.Hours())
		out.RealizedApy = &apy
	}

	returns := make([]float64, 0, len(points)-1)
	peak := first.Price
	maxDrawdown := 0.0
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].Price, points[i].Price
		if prev.IsPositive() {
			returns = append(returns, cur.Div(prev).InexactFloat64()-1)
		}
		if cur.GreaterThan(peak) {
			peak = cur
		}
		drawdown := peak.Sub(cur).Div(peak).InexactFloat64()
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}
	out.MaxDrawdown = &maxDrawdown

	if len(returns) >= 2 {
		vol, err := stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, fmt.Errorf("failed to compute volatility: %w", err)
		}
		out.Volatility = &vol
	}

	return out, nil
}
