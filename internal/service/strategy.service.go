package service

import (
	"context"
	"database/sql"
	"fmt"

	"vaultcraft/internal/calculator"
	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/domain"
	"vaultcraft/internal/logger"
	"vaultcraft/internal/repository"
	"vaultcraft/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StrategyService deploys a vault's idle capital into an external liquidity
// pool plus an auto-compounding farm, and reverses the flow on withdrawal.
// One strategy binds to exactly one vault for its lifetime.
type StrategyService interface {
	AttachStrategy(ctx context.Context, input AttachStrategyInput) (*model.Strategy, error)
	// Invest deploys amount of the vault's underlying: swaps the pair leg,
	// joins the pool, farms the LP receipt. Returns the amount deployed.
	Invest(ctx context.Context, tx *sql.Tx, vault *model.Vault, amount decimal.Decimal) (decimal.Decimal, error)
	// Divest unwinds enough farm shares to return at least amount to the
	// vault's idle balance, or fails with ErrStrategyDivestShortfall.
	// Returns the amount actually realized (>= amount on success).
	Divest(ctx context.Context, tx *sql.Tx, vault *model.Vault, amount decimal.Decimal) (decimal.Decimal, error)
	// Valuation marks the strategy's holdings in the vault's underlying
	// using fresh external reads. An estimate only: an actual divest
	// realizes slippage that a mark does not.
	Valuation(ctx context.Context, tx *sql.Tx, vault *model.Vault) (*domain.Valuation, error)
}

type AttachStrategyInput struct {
	VaultID        uuid.UUID
	PoolID         string
	FarmAccount    string
	PairAsset      string
	InvestBps      int32
	MaxSlippageBps int32
}

type strategyServiceHandler struct {
	Db                   *sql.DB
	StrategyRepository   repository.StrategyRepository
	VaultEventRepository repository.VaultEventRepository
	SwapBridge           SwapBridgeService
	PoolRepository       repository.PoolRepository
	FarmRepository       repository.FarmRepository
}

func NewStrategyService(
	db *sql.DB,
	strategyRepository repository.StrategyRepository,
	vaultEventRepository repository.VaultEventRepository,
	swapBridge SwapBridgeService,
	poolRepository repository.PoolRepository,
	farmRepository repository.FarmRepository,
) StrategyService {
	return strategyServiceHandler{
		Db:                   db,
		StrategyRepository:   strategyRepository,
		VaultEventRepository: vaultEventRepository,
		SwapBridge:           swapBridge,
		PoolRepository:       poolRepository,
		FarmRepository:       farmRepository,
	}
}

func (h strategyServiceHandler) AttachStrategy(ctx context.Context, input AttachStrategyInput) (*model.Strategy, error) {
	log := logger.FromContext(ctx)

	if input.PoolID == "" || input.FarmAccount == "" || input.PairAsset == "" {
		return nil, fmt.Errorf("pool id, farm account and pair asset are required")
	}
	if input.InvestBps < 0 || input.InvestBps > calculator.BpsDenominator {
		return nil, fmt.Errorf("invest bps out of range: %d", input.InvestBps)
	}
	if input.MaxSlippageBps <= 0 || input.MaxSlippageBps >= calculator.BpsDenominator {
		return nil, fmt.Errorf("max slippage bps out of range: %d", input.MaxSlippageBps)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := h.StrategyRepository.GetByVault(tx, input.VaultID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("vault %s already has strategy %s bound", input.VaultID, existing.StrategyID)
	}

	strategy, err := h.StrategyRepository.Add(tx, model.Strategy{
		VaultID:          input.VaultID,
		PoolID:           input.PoolID,
		FarmAccount:      input.FarmAccount,
		PairAsset:        input.PairAsset,
		InvestBps:        input.InvestBps,
		MaxSlippageBps:   input.MaxSlippageBps,
		LpBalance:        decimal.Zero,
		FarmShareBalance: decimal.Zero,
	})
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	log.Infow("attached strategy",
		"strategyID", strategy.StrategyID,
		"vaultID", strategy.VaultID,
		"poolID", strategy.PoolID,
	)

	return strategy, nil
}

// minOutFor bounds a swap of amountIn at the freshly quoted rate less the
// strategy's slippage tolerance.
func (h strategyServiceHandler) minOutFor(ctx context.Context, fromAsset, toAsset string, amountIn decimal.Decimal, maxSlippageBps int32) (decimal.Decimal, error) {
	rate, err := h.SwapBridge.SpotRate(ctx, fromAsset, toAsset)
	if err != nil {
		return decimal.Zero, err
	}
	expected := amountIn.Mul(rate).Floor()
	minOut := calculator.ApplyBps(expected, calculator.BpsDenominator-maxSlippageBps)
	if !minOut.IsPositive() {
		minOut = decimal.NewFromInt(1)
	}
	return minOut, nil
}

func (h strategyServiceHandler) Invest(ctx context.Context, tx *sql.Tx, vault *model.Vault, amount decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if err := calculator.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	strategy, err := h.StrategyRepository.GetByVault(tx, vault.VaultID)
	if err != nil {
		return decimal.Zero, err
	}
	if strategy == nil {
		return decimal.Zero, fmt.Errorf("vault %s has no strategy attached", vault.VaultID)
	}

	// Half the deployment converts to the pool's pair asset; the remainder
	// stays in the underlying so both legs can join the pool.
	pairLeg, _ := amount.QuoRem(decimal.NewFromInt(2), 0)
	underlyingLeg := amount.Sub(pairLeg)
	if !pairLeg.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s is too small to split across pool legs", domain.ErrInvalidAmount, amount)
	}

	minOut, err := h.minOutFor(ctx, vault.UnderlyingAsset, strategy.PairAsset, pairLeg, strategy.MaxSlippageBps)
	if err != nil {
		return decimal.Zero, err
	}
	pairOut, err := h.SwapBridge.SwapExactIn(ctx, vault.CustodyAccount, vault.UnderlyingAsset, strategy.PairAsset, pairLeg, minOut)
	if err != nil {
		return decimal.Zero, err
	}

	lpOut, err := h.PoolRepository.Join(ctx, strategy.PoolID, vault.CustodyAccount, []domain.AssetAmount{
		{Asset: vault.UnderlyingAsset, Amount: underlyingLeg},
		{Asset: strategy.PairAsset, Amount: pairOut},
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("pool join failed: %w", err)
	}
	if !lpOut.IsPositive() {
		return decimal.Zero, fmt.Errorf("pool join returned %s lp units", lpOut)
	}

	farmShares, err := h.FarmRepository.Deposit(ctx, strategy.FarmAccount, vault.CustodyAccount, lpOut)
	if err != nil {
		return decimal.Zero, fmt.Errorf("farm deposit failed: %w", err)
	}
	if !farmShares.IsPositive() {
		return decimal.Zero, fmt.Errorf("farm deposit returned %s shares", farmShares)
	}

	err = h.StrategyRepository.UpdateBalances(tx, strategy.StrategyID, strategy.LpBalance, strategy.FarmShareBalance.Add(farmShares))
	if err != nil {
		return decimal.Zero, err
	}

	_, err = h.VaultEventRepository.Add(tx, model.VaultEvent{
		VaultID:   vault.VaultID,
		EventType: model.VaultEventType_Invest,
		Amount:    util.DecimalPointer(amount),
	})
	if err != nil {
		return decimal.Zero, err
	}

	log.Infow("invested",
		"vaultID", vault.VaultID,
		"amount", amount,
		"lpOut", lpOut,
		"farmShares", farmShares,
	)

	return amount, nil
}

func (h strategyServiceHandler) Divest(ctx context.Context, tx *sql.Tx, vault *model.Vault, amount decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if err := calculator.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	strategy, err := h.StrategyRepository.GetByVault(tx, vault.VaultID)
	if err != nil {
		return decimal.Zero, err
	}
	if strategy == nil {
		return decimal.Zero, fmt.Errorf("vault %s has no strategy attached", vault.VaultID)
	}

	pricePerShare, err := h.FarmRepository.PricePerShare(ctx, strategy.FarmAccount)
	if err != nil {
		return decimal.Zero, err
	}
	lpRate, err := h.PoolRepository.RatePerLpUnit(ctx, strategy.PoolID, vault.UnderlyingAsset)
	if err != nil {
		return decimal.Zero, err
	}
	if !pricePerShare.IsPositive() || !lpRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid external rates: pricePerShare=%s lpRate=%s", pricePerShare, lpRate)
	}

	// Farm shares to unwind for the requested amount at the current mark.
	underlyingPerShare := pricePerShare.Mul(lpRate)
	sharesNeeded := amount.Div(underlyingPerShare).Ceil()
	if sharesNeeded.GreaterThan(strategy.FarmShareBalance) {
		sharesNeeded = strategy.FarmShareBalance
	}
	if !sharesNeeded.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: wanted %s, nothing deployed", domain.ErrStrategyDivestShortfall, amount)
	}

	lpOut, err := h.FarmRepository.Withdraw(ctx, strategy.FarmAccount, vault.CustodyAccount, sharesNeeded)
	if err != nil {
		return decimal.Zero, fmt.Errorf("farm withdraw failed: %w", err)
	}

	assetsOut, err := h.PoolRepository.Exit(ctx, strategy.PoolID, vault.CustodyAccount, lpOut)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pool exit failed: %w", err)
	}

	realized := decimal.Zero
	for _, leg := range assetsOut {
		if !leg.Amount.IsPositive() {
			continue
		}
		if leg.Asset == vault.UnderlyingAsset {
			realized = realized.Add(leg.Amount)
			continue
		}
		minOut, err := h.minOutFor(ctx, leg.Asset, vault.UnderlyingAsset, leg.Amount, strategy.MaxSlippageBps)
		if err != nil {
			return decimal.Zero, err
		}
		swapped, err := h.SwapBridge.SwapExactIn(ctx, vault.CustodyAccount, leg.Asset, vault.UnderlyingAsset, leg.Amount, minOut)
		if err != nil {
			return decimal.Zero, err
		}
		realized = realized.Add(swapped)
	}

	// Never silently under-pay: if the unwind realized less than asked,
	// the whole surrounding operation aborts.
	if realized.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("%w: realized %s of %s", domain.ErrStrategyDivestShortfall, realized, amount)
	}

	err = h.StrategyRepository.UpdateBalances(tx, strategy.StrategyID, strategy.LpBalance, strategy.FarmShareBalance.Sub(sharesNeeded))
	if err != nil {
		return decimal.Zero, err
	}

	_, err = h.VaultEventRepository.Add(tx, model.VaultEvent{
		VaultID:   vault.VaultID,
		EventType: model.VaultEventType_Divest,
		Amount:    util.DecimalPointer(realized),
	})
	if err != nil {
		return decimal.Zero, err
	}

	log.Infow("divested",
		"vaultID", vault.VaultID,
		"requested", amount,
		"realized", realized,
		"farmSharesBurned", sharesNeeded,
	)

	return realized, nil
}

func (h strategyServiceHandler) Valuation(ctx context.Context, tx *sql.Tx, vault *model.Vault) (*domain.Valuation, error) {
	strategy, err := h.StrategyRepository.GetByVault(tx, vault.VaultID)
	if err != nil {
		return nil, err
	}
	if strategy == nil {
		return &domain.Valuation{}, nil
	}

	// Rates are re-read on every valuation; caching a quote across calls
	// would let the mark drift from the pool.
	lpRate, err := h.PoolRepository.RatePerLpUnit(ctx, strategy.PoolID, vault.UnderlyingAsset)
	if err != nil {
		return nil, err
	}
	lpValue := strategy.LpBalance.Mul(lpRate).Floor()

	farmValue := decimal.Zero
	if strategy.FarmShareBalance.IsPositive() {
		pricePerShare, err := h.FarmRepository.PricePerShare(ctx, strategy.FarmAccount)
		if err != nil {
			return nil, err
		}
		farmValue = strategy.FarmShareBalance.Mul(pricePerShare).Mul(lpRate).Floor()
	}

	return &domain.Valuation{
		LpValue:   lpValue,
		FarmValue: farmValue,
		Total:     lpValue.Add(farmValue),
	}, nil
}
