package integration_tests

import (
	"context"
	"fmt"
	"sync"

	"vaultcraft/internal/domain"
	"vaultcraft/internal/repository"

	"github.com/shopspring/decimal"
)

// SimChain is an in-memory stand-in for the chain gateway: a token ledger,
// a constant-rate exchange, liquidity pools and auto-compounding farms under
// one lock. It implements every external adapter interface the engine uses,
// so the full deposit/invest/divest/withdraw cycle runs without a gateway.
//
// Rates are fixed unless a test moves them, which makes outcomes exact: a
// swap at rate r returns amount*r, a pool exit returns reserves pro rata.
type SimChain struct {
	mu sync.Mutex

	balances   map[string]map[string]decimal.Decimal
	allowances map[string]map[string]decimal.Decimal
	rates      map[string]decimal.Decimal
	pools      map[string]*simPool
	farms      map[string]*simFarm
	allowlist  map[string]bool
}

type simPool struct {
	baseAsset string
	reserves  map[string]decimal.Decimal
	lpSupply  decimal.Decimal
}

type simFarm struct {
	pricePerShare decimal.Decimal
	lpLocked      decimal.Decimal
	shares        map[string]decimal.Decimal
}

func NewSimChainForTests() *SimChain {
	return &SimChain{
		balances:   map[string]map[string]decimal.Decimal{},
		allowances: map[string]map[string]decimal.Decimal{},
		rates:      map[string]decimal.Decimal{},
		pools:      map[string]*simPool{},
		farms:      map[string]*simFarm{},
		allowlist:  map[string]bool{},
	}
}

var _ repository.AssetRepository = &SimChain{}
var _ repository.ExchangeRouterRepository = &SimChain{}
var _ repository.PoolRepository = &SimChain{}
var _ repository.FarmRepository = &SimChain{}
var _ repository.AccessGateRepository = &SimChain{}

func rateKey(from, to string) string {
	return from + "->" + to
}

// test setup helpers

func (s *SimChain) Mint(asset, account string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credit(asset, account, amount)
}

// Allow grants the platform an allowance to pull amount from owner.
func (s *SimChain) Allow(asset, owner string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.allowances[asset] == nil {
		s.allowances[asset] = map[string]decimal.Decimal{}
	}
	s.allowances[asset][owner] = amount
}

func (s *SimChain) AddToAllowlist(account string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowlist[account] = true
}

// SetSpotRate fixes the exchange rate in both directions.
func (s *SimChain) SetSpotRate(from, to string, rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[rateKey(from, to)] = rate
	s.rates[rateKey(to, from)] = decimal.NewFromInt(1).Div(rate)
}

func (s *SimChain) CreatePool(poolID, baseAsset string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[poolID] = &simPool{
		baseAsset: baseAsset,
		reserves:  map[string]decimal.Decimal{},
		lpSupply:  decimal.Zero,
	}
}

func (s *SimChain) CreateFarm(farmAccount string, pricePerShare decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farms[farmAccount] = &simFarm{
		pricePerShare: pricePerShare,
		lpLocked:      decimal.Zero,
		shares:        map[string]decimal.Decimal{},
	}
}

// SetFarmPricePerShare simulates the farm compounding yield: the same shares
// now redeem more LP.
func (s *SimChain) SetFarmPricePerShare(farmAccount string, pricePerShare decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if farm, ok := s.farms[farmAccount]; ok {
		farm.pricePerShare = pricePerShare
	}
}

func (s *SimChain) BalanceFor(asset, account string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balanceOf(asset, account)
}

// ledger internals, callers hold s.mu

func (s *SimChain) balanceOf(asset, account string) decimal.Decimal {
	if s.balances[asset] == nil {
		return decimal.Zero
	}
	return s.balances[asset][account]
}

func (s *SimChain) credit(asset, account string, amount decimal.Decimal) {
	if s.balances[asset] == nil {
		s.balances[asset] = map[string]decimal.Decimal{}
	}
	s.balances[asset][account] = s.balances[asset][account].Add(amount)
}

func (s *SimChain) debit(asset, account string, amount decimal.Decimal) error {
	if s.balanceOf(asset, account).LessThan(amount) {
		return fmt.Errorf("%w: %s holds %s %s, needs %s",
			domain.ErrInsufficientBalance, account, s.balanceOf(asset, account), asset, amount)
	}
	s.balances[asset][account] = s.balances[asset][account].Sub(amount)
	return nil
}

func (s *SimChain) spotRate(from, to string) (decimal.Decimal, error) {
	rate, ok := s.rates[rateKey(from, to)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s -> %s", domain.ErrRouteUnavailable, from, to)
	}
	return rate, nil
}

// repository.AssetRepository

func (s *SimChain) Transfer(ctx context.Context, asset, from, to string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.debit(asset, from, amount); err != nil {
		return err
	}
	s.credit(asset, to, amount)
	return nil
}

func (s *SimChain) TransferFrom(ctx context.Context, asset, owner, to string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	allowance := decimal.Zero
	if s.allowances[asset] != nil {
		allowance = s.allowances[asset][owner]
	}
	if allowance.LessThan(amount) {
		return fmt.Errorf("%w: %s allowed %s %s, needs %s",
			domain.ErrInsufficientAllowance, owner, allowance, asset, amount)
	}
	if err := s.debit(asset, owner, amount); err != nil {
		return err
	}
	s.allowances[asset][owner] = allowance.Sub(amount)
	s.credit(asset, to, amount)
	return nil
}

func (s *SimChain) BalanceOf(ctx context.Context, asset, owner string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balanceOf(asset, owner), nil
}

// repository.ExchangeRouterRepository

func (s *SimChain) SwapExactInputSingle(ctx context.Context, req repository.SwapExactInputSingleRequest) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rate, err := s.spotRate(req.TokenIn, req.TokenOut)
	if err != nil {
		return decimal.Zero, err
	}
	amountOut := req.AmountIn.Mul(rate)
	if amountOut.LessThan(req.MinAmountOut) {
		return decimal.Zero, fmt.Errorf("%w: got %s, want at least %s",
			domain.ErrSlippageExceeded, amountOut, req.MinAmountOut)
	}

	if err := s.debit(req.TokenIn, req.Owner, req.AmountIn); err != nil {
		return decimal.Zero, err
	}
	s.credit(req.TokenOut, req.Owner, amountOut)
	return amountOut, nil
}

func (s *SimChain) SpotRate(ctx context.Context, tokenIn, tokenOut string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spotRate(tokenIn, tokenOut)
}

// repository.PoolRepository

// Join values each leg in the pool's base asset at spot and mints that many
// LP units, so one LP unit always marks at one base unit.
func (s *SimChain) Join(ctx context.Context, poolID, owner string, assetsIn []domain.AssetAmount) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown pool %s", poolID)
	}

	lpOut := decimal.Zero
	for _, leg := range assetsIn {
		if err := s.debit(leg.Asset, owner, leg.Amount); err != nil {
			return decimal.Zero, err
		}
		pool.reserves[leg.Asset] = pool.reserves[leg.Asset].Add(leg.Amount)

		value := leg.Amount
		if leg.Asset != pool.baseAsset {
			rate, err := s.spotRate(leg.Asset, pool.baseAsset)
			if err != nil {
				return decimal.Zero, err
			}
			value = leg.Amount.Mul(rate)
		}
		lpOut = lpOut.Add(value)
	}

	pool.lpSupply = pool.lpSupply.Add(lpOut)
	return lpOut, nil
}

func (s *SimChain) Exit(ctx context.Context, poolID, owner string, lpUnitsIn decimal.Decimal) ([]domain.AssetAmount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("unknown pool %s", poolID)
	}
	if pool.lpSupply.LessThan(lpUnitsIn) {
		return nil, fmt.Errorf("pool %s has %s lp units, exit wants %s", poolID, pool.lpSupply, lpUnitsIn)
	}

	fraction := lpUnitsIn.Div(pool.lpSupply)
	out := []domain.AssetAmount{}
	for asset, reserve := range pool.reserves {
		amount := reserve.Mul(fraction)
		pool.reserves[asset] = reserve.Sub(amount)
		s.credit(asset, owner, amount)
		out = append(out, domain.AssetAmount{Asset: asset, Amount: amount})
	}
	pool.lpSupply = pool.lpSupply.Sub(lpUnitsIn)
	return out, nil
}

func (s *SimChain) RatePerLpUnit(ctx context.Context, poolID, asset string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown pool %s", poolID)
	}
	if asset == pool.baseAsset {
		return decimal.NewFromInt(1), nil
	}
	rate, err := s.spotRate(pool.baseAsset, asset)
	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// repository.FarmRepository

func (s *SimChain) Deposit(ctx context.Context, farmAccount, owner string, lpUnits decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	farm, ok := s.farms[farmAccount]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown farm %s", farmAccount)
	}

	farmShares := lpUnits.Div(farm.pricePerShare)
	farm.lpLocked = farm.lpLocked.Add(lpUnits)
	farm.shares[owner] = farm.shares[owner].Add(farmShares)
	return farmShares, nil
}

func (s *SimChain) Withdraw(ctx context.Context, farmAccount, owner string, farmShares decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	farm, ok := s.farms[farmAccount]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown farm %s", farmAccount)
	}
	if farm.shares[owner].LessThan(farmShares) {
		return decimal.Zero, fmt.Errorf("%s holds %s farm shares, withdraw wants %s", owner, farm.shares[owner], farmShares)
	}

	lpOut := farmShares.Mul(farm.pricePerShare)
	farm.shares[owner] = farm.shares[owner].Sub(farmShares)
	farm.lpLocked = farm.lpLocked.Sub(lpOut)
	return lpOut, nil
}

func (s *SimChain) PricePerShare(ctx context.Context, farmAccount string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	farm, ok := s.farms[farmAccount]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown farm %s", farmAccount)
	}
	return farm.pricePerShare, nil
}

// repository.AccessGateRepository

func (s *SimChain) IsEligible(ctx context.Context, account string, proof []string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allowlist[account], nil
}
