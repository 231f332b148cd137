package integration_tests

import (
	"context"
	"testing"

	"vaultcraft/internal/domain"
	"vaultcraft/internal/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
		return d1.Sub(d2).Abs().LessThan(decimal.NewFromFloat(0.00001))
	})
}

func Test_SimChain_Swap(t *testing.T) {
	ctx := context.Background()
	sim := NewSimChainForTests()
	sim.SetSpotRate("USDC", "WETH", decimal.RequireFromString("0.5"))
	sim.Mint("USDC", "custody", decimal.NewFromInt(100))

	out, err := sim.SwapExactInputSingle(ctx, repository.SwapExactInputSingleRequest{
		Owner:        "custody",
		TokenIn:      "USDC",
		TokenOut:     "WETH",
		AmountIn:     decimal.NewFromInt(100),
		MinAmountOut: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.True(t, out.Equal(decimal.NewFromInt(50)))
	require.True(t, sim.BalanceFor("USDC", "custody").IsZero())
	require.True(t, sim.BalanceFor("WETH", "custody").Equal(decimal.NewFromInt(50)))

	// the inverse rate comes for free
	back, err := sim.SpotRate(ctx, "WETH", "USDC")
	require.NoError(t, err)
	require.True(t, back.Equal(decimal.NewFromInt(2)))

	_, err = sim.SwapExactInputSingle(ctx, repository.SwapExactInputSingleRequest{
		Owner:        "custody",
		TokenIn:      "WETH",
		TokenOut:     "USDC",
		AmountIn:     decimal.NewFromInt(50),
		MinAmountOut: decimal.NewFromInt(101),
	})
	require.ErrorIs(t, err, domain.ErrSlippageExceeded)
}

func Test_SimChain_PoolRoundTrip(t *testing.T) {
	ctx := context.Background()
	sim := NewSimChainForTests()
	sim.SetSpotRate("USDC", "WETH", decimal.RequireFromString("0.5"))
	sim.CreatePool("pool-usdc-weth", "USDC")
	sim.Mint("USDC", "custody", decimal.NewFromInt(200))
	sim.Mint("WETH", "custody", decimal.NewFromInt(100))

	lpOut, err := sim.Join(ctx, "pool-usdc-weth", "custody", []domain.AssetAmount{
		{Asset: "USDC", Amount: decimal.NewFromInt(200)},
		{Asset: "WETH", Amount: decimal.NewFromInt(100)},
	})
	require.NoError(t, err)
	// 200 usdc plus 100 weth at rate 2 both count in the base asset
	require.True(t, lpOut.Equal(decimal.NewFromInt(400)))

	rate, err := sim.RatePerLpUnit(ctx, "pool-usdc-weth", "USDC")
	require.NoError(t, err)
	require.True(t, rate.Equal(decimal.NewFromInt(1)))

	out, err := sim.Exit(ctx, "pool-usdc-weth", "custody", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(
		[]domain.AssetAmount{
			{Asset: "USDC", Amount: decimal.NewFromInt(50)},
			{Asset: "WETH", Amount: decimal.NewFromInt(25)},
		},
		out,
		decimalComparer(),
		cmpopts.SortSlices(func(i, j domain.AssetAmount) bool {
			return i.Asset < j.Asset
		}),
	))
}

func Test_SimChain_FarmYield(t *testing.T) {
	ctx := context.Background()
	sim := NewSimChainForTests()
	sim.CreateFarm("farm:compounder", decimal.NewFromInt(1))

	farmShares, err := sim.Deposit(ctx, "farm:compounder", "custody", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.True(t, farmShares.Equal(decimal.NewFromInt(100)))

	// the farm compounds: the same shares now redeem more lp
	sim.SetFarmPricePerShare("farm:compounder", decimal.RequireFromString("1.1"))

	lpOut, err := sim.Withdraw(ctx, "farm:compounder", "custody", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.True(t, lpOut.Equal(decimal.RequireFromString("110")))

	_, err = sim.Withdraw(ctx, "farm:compounder", "custody", decimal.NewFromInt(1))
	require.Error(t, err)
}

func Test_SimChain_Allowances(t *testing.T) {
	ctx := context.Background()
	sim := NewSimChainForTests()
	sim.Mint("USDC", "alice", decimal.NewFromInt(100))
	sim.Allow("USDC", "alice", decimal.NewFromInt(60))

	err := sim.TransferFrom(ctx, "USDC", "alice", "custody", decimal.NewFromInt(50))
	require.NoError(t, err)

	// the first pull consumed most of the grant
	err = sim.TransferFrom(ctx, "USDC", "alice", "custody", decimal.NewFromInt(20))
	require.ErrorIs(t, err, domain.ErrInsufficientAllowance)

	err = sim.Transfer(ctx, "USDC", "custody", "bob", decimal.NewFromInt(60))
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}
