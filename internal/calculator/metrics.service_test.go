package calculator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func pricePoint(price float64, at time.Time) SharePricePoint {
	return SharePricePoint{Price: decimal.NewFromFloat(price), At: at}
}

func Test_ComputeVaultMetrics(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("too few samples", func(t *testing.T) {
		metrics, err := ComputeVaultMetrics([]SharePricePoint{pricePoint(1, start)})
		require.NoError(t, err)
		require.Equal(t, 1, metrics.Samples)
		require.Nil(t, metrics.RealizedApy)
		require.Nil(t, metrics.Volatility)
	})

	t.Run("ten percent over half a year", func(t *testing.T) {
		metrics, err := ComputeVaultMetrics([]SharePricePoint{
			pricePoint(1.0, start),
			pricePoint(1.1, start.Add(24*365/2*time.Hour)),
		})
		require.NoError(t, err)
		require.NotNil(t, metrics.RealizedApy)
		require.InDelta(t, 0.2, *metrics.RealizedApy, 1e-9)
	})

	t.Run("max drawdown tracks peak to trough", func(t *testing.T) {
		metrics, err := ComputeVaultMetrics([]SharePricePoint{
			pricePoint(1.0, start),
			pricePoint(2.0, start.Add(time.Hour)),
			pricePoint(1.5, start.Add(2*time.Hour)),
			pricePoint(1.8, start.Add(3*time.Hour)),
		})
		require.NoError(t, err)
		require.NotNil(t, metrics.MaxDrawdown)
		require.InDelta(t, 0.25, *metrics.MaxDrawdown, 1e-9)
		require.NotNil(t, metrics.Volatility)
	})
}
