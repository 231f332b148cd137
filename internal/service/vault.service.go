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

	"github.com/shopspring/decimal"
)

// VaultService holds one underlying asset per vault, mints and burns
// proportional shares, and delegates idle balance to the attached strategy.
// Total assets are always recomputed from idle balance plus a fresh strategy
// valuation, never cached.
type VaultService interface {
	Deposit(ctx context.Context, tx *sql.Tx, vault *model.Vault, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, tx *sql.Tx, vault *model.Vault, shares decimal.Decimal) (decimal.Decimal, error)
	TotalAssets(ctx context.Context, tx *sql.Tx, vault *model.Vault) (decimal.Decimal, error)
}

type vaultServiceHandler struct {
	VaultRepository      repository.VaultRepository
	StrategyRepository   repository.StrategyRepository
	VaultEventRepository repository.VaultEventRepository
	StrategyService      StrategyService
}

func NewVaultService(
	vaultRepository repository.VaultRepository,
	strategyRepository repository.StrategyRepository,
	vaultEventRepository repository.VaultEventRepository,
	strategyService StrategyService,
) VaultService {
	return vaultServiceHandler{
		VaultRepository:      vaultRepository,
		StrategyRepository:   strategyRepository,
		VaultEventRepository: vaultEventRepository,
		StrategyService:      strategyService,
	}
}

func (h vaultServiceHandler) TotalAssets(ctx context.Context, tx *sql.Tx, vault *model.Vault) (decimal.Decimal, error) {
	valuation, err := h.StrategyService.Valuation(ctx, tx, vault)
	if err != nil {
		return decimal.Zero, err
	}
	return vault.IdleBalance.Add(valuation.Total), nil
}

func (h vaultServiceHandler) Deposit(ctx context.Context, tx *sql.Tx, vault *model.Vault, amount decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if err := calculator.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	totalAssets, err := h.TotalAssets(ctx, tx, vault)
	if err != nil {
		return decimal.Zero, err
	}

	shares, err := calculator.SharesForDeposit(amount, vault.TotalShares, totalAssets)
	if err != nil {
		return decimal.Zero, err
	}
	if !shares.IsPositive() {
		// Flooring a dust deposit against an appreciated vault can mint
		// zero shares; reject instead of absorbing the deposit.
		return decimal.Zero, fmt.Errorf("%w: %s mints no shares at current share price", domain.ErrInvalidAmount, amount)
	}

	newTotalShares := vault.TotalShares.Add(shares)
	newIdle := vault.IdleBalance.Add(amount)

	strategy, err := h.StrategyRepository.GetByVault(tx, vault.VaultID)
	if err != nil {
		return decimal.Zero, err
	}
	if strategy != nil {
		investable := calculator.ApplyBps(amount, strategy.InvestBps)
		if investable.GreaterThan(decimal.NewFromInt(1)) {
			deployed, err := h.StrategyService.Invest(ctx, tx, vault, investable)
			if err != nil {
				return decimal.Zero, err
			}
			newIdle = newIdle.Sub(deployed)
		}
	}

	err = h.VaultRepository.UpdateBalances(tx, vault.VaultID, newTotalShares, newIdle)
	if err != nil {
		return decimal.Zero, err
	}
	vault.TotalShares = newTotalShares
	vault.IdleBalance = newIdle

	_, err = h.VaultEventRepository.Add(tx, model.VaultEvent{
		VaultID:    vault.VaultID,
		EventType:  model.VaultEventType_Deposit,
		Amount:     util.DecimalPointer(amount),
		Shares:     util.DecimalPointer(shares),
		SharePrice: util.DecimalPointer(calculator.SharePrice(newTotalShares, totalAssets.Add(amount))),
	})
	if err != nil {
		return decimal.Zero, err
	}

	log.Infow("deposit",
		"vaultID", vault.VaultID,
		"amount", amount,
		"sharesMinted", shares,
	)

	return shares, nil
}

func (h vaultServiceHandler) Withdraw(ctx context.Context, tx *sql.Tx, vault *model.Vault, shares decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if err := calculator.ValidateAmount(shares); err != nil {
		return decimal.Zero, err
	}
	if shares.GreaterThan(vault.TotalShares) {
		return decimal.Zero, fmt.Errorf("%w: redeeming %s of %s total", domain.ErrInsufficientShares, shares, vault.TotalShares)
	}

	totalAssets, err := h.TotalAssets(ctx, tx, vault)
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := calculator.AssetsForShares(shares, vault.TotalShares, totalAssets)
	if err != nil {
		return decimal.Zero, err
	}

	newIdle := vault.IdleBalance.Sub(amount)
	if newIdle.IsNegative() {
		// Idle can't cover the payout: pull the shortfall back from the
		// strategy. All-or-nothing - a divest shortfall aborts the whole
		// withdrawal rather than paying out a reduced amount.
		shortfall := amount.Sub(vault.IdleBalance)
		realized, err := h.StrategyService.Divest(ctx, tx, vault, shortfall)
		if err != nil {
			return decimal.Zero, err
		}
		newIdle = vault.IdleBalance.Add(realized).Sub(amount)
	}

	newTotalShares := vault.TotalShares.Sub(shares)
	err = h.VaultRepository.UpdateBalances(tx, vault.VaultID, newTotalShares, newIdle)
	if err != nil {
		return decimal.Zero, err
	}
	vault.TotalShares = newTotalShares
	vault.IdleBalance = newIdle

	_, err = h.VaultEventRepository.Add(tx, model.VaultEvent{
		VaultID:    vault.VaultID,
		EventType:  model.VaultEventType_Withdraw,
		Amount:     util.DecimalPointer(amount),
		Shares:     util.DecimalPointer(shares),
		SharePrice: util.DecimalPointer(calculator.SharePrice(newTotalShares, totalAssets.Sub(amount))),
	})
	if err != nil {
		return decimal.Zero, err
	}

	log.Infow("withdraw",
		"vaultID", vault.VaultID,
		"shares", shares,
		"amount", amount,
	)

	return amount, nil
}
