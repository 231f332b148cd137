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

// RouterService is the single entry point for user capital. It validates
// access, skims the protocol fee, forwards net principal to the right vault
// and has the position manager mint or burn the caller's claim.
//
// The fee is charged on each gross flow independently: a buy-then-sell round
// trip of the same principal pays the fee twice. That is intended business
// policy, not an accident of the implementation.
type RouterService interface {
	Buy(ctx context.Context, input BuyInput) (*BuyResult, error)
	Sell(ctx context.Context, input SellInput) (*SellResult, error)
}

type BuyInput struct {
	Caller           string
	Asset            string
	GrossAmount      decimal.Decimal
	EligibilityProof []string
}

type BuyResult struct {
	PositionID   int64
	SharesMinted decimal.Decimal
	Quote        domain.FeeQuote
}

type SellInput struct {
	Caller     string
	PositionID int64
	Shares     decimal.Decimal
}

type SellResult struct {
	Quote             domain.FeeQuote
	NetProceeds       decimal.Decimal
	PositionDestroyed bool
}

type routerServiceHandler struct {
	Db              *sql.DB
	FeeBps          int32
	TreasuryAccount string

	locks *vaultLocks

	VaultRepository      repository.VaultRepository
	TreasuryRepository   repository.TreasuryRepository
	AssetRepository      repository.AssetRepository
	AccessGateRepository repository.AccessGateRepository
	VaultService         VaultService
	PositionService      PositionService
}

func NewRouterService(
	db *sql.DB,
	feeBps int32,
	treasuryAccount string,
	vaultRepository repository.VaultRepository,
	treasuryRepository repository.TreasuryRepository,
	assetRepository repository.AssetRepository,
	accessGateRepository repository.AccessGateRepository,
	vaultService VaultService,
	positionService PositionService,
) RouterService {
	return &routerServiceHandler{
		Db:                   db,
		FeeBps:               feeBps,
		TreasuryAccount:      treasuryAccount,
		locks:                newVaultLocks(),
		VaultRepository:      vaultRepository,
		TreasuryRepository:   treasuryRepository,
		AssetRepository:      assetRepository,
		AccessGateRepository: accessGateRepository,
		VaultService:         vaultService,
		PositionService:      positionService,
	}
}

func (h *routerServiceHandler) Buy(ctx context.Context, input BuyInput) (*BuyResult, error) {
	log := logger.FromContext(ctx)

	quote, err := calculator.NewFeeQuote(input.GrossAmount, h.FeeBps)
	if err != nil {
		return nil, err
	}
	if !quote.Net.IsPositive() {
		return nil, fmt.Errorf("%w: nothing left to deposit after fee", domain.ErrInvalidAmount)
	}

	eligible, err := h.AccessGateRepository.IsEligible(ctx, input.Caller, input.EligibilityProof)
	if err != nil {
		return nil, fmt.Errorf("access gate check failed: %w", err)
	}
	if !eligible {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotEligible, input.Caller)
	}

	vault, err := h.VaultRepository.GetByAsset(nil, input.Asset)
	if err != nil {
		return nil, err
	}

	if err := h.locks.Acquire(vault.VaultID); err != nil {
		return nil, err
	}
	defer h.locks.Release(vault.VaultID)

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Re-read inside the transaction so balances are current.
	vault, err = h.VaultRepository.GetByAsset(tx, input.Asset)
	if err != nil {
		return nil, err
	}

	// Custody moves first: an insufficient balance or allowance rejects the
	// buy before any accounting is staged.
	if quote.Fee.IsPositive() {
		err = h.AssetRepository.TransferFrom(ctx, input.Asset, input.Caller, h.TreasuryAccount, quote.Fee)
		if err != nil {
			return nil, err
		}
	}
	err = h.AssetRepository.TransferFrom(ctx, input.Asset, input.Caller, vault.CustodyAccount, quote.Net)
	if err != nil {
		return nil, err
	}

	shares, err := h.VaultService.Deposit(ctx, tx, vault, quote.Net)
	if err != nil {
		return nil, err
	}

	position, err := h.PositionService.Mint(tx, input.Caller, vault.VaultID, shares)
	if err != nil {
		return nil, err
	}

	if quote.Fee.IsPositive() {
		_, err = h.TreasuryRepository.AddAccrual(tx, model.TreasuryAccrual{
			Asset:      input.Asset,
			Amount:     quote.Fee,
			Source:     model.FeeSource_Buy,
			VaultID:    &vault.VaultID,
			PositionID: &position.PositionID,
		})
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	log.Infow("buy",
		"caller", input.Caller,
		"asset", input.Asset,
		"gross", quote.Gross,
		"fee", quote.Fee,
		"positionID", position.PositionID,
	)

	return &BuyResult{
		PositionID:   position.PositionID,
		SharesMinted: shares,
		Quote:        quote,
	}, nil
}

func (h *routerServiceHandler) Sell(ctx context.Context, input SellInput) (*SellResult, error) {
	log := logger.FromContext(ctx)

	if err := calculator.ValidateAmount(input.Shares); err != nil {
		return nil, err
	}

	position, err := h.PositionService.Get(nil, input.PositionID)
	if err != nil {
		return nil, err
	}
	vault, err := h.VaultRepository.Get(nil, position.VaultID)
	if err != nil {
		return nil, err
	}

	if err := h.locks.Acquire(vault.VaultID); err != nil {
		return nil, err
	}
	defer h.locks.Release(vault.VaultID)

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	vault, err = h.VaultRepository.Get(tx, position.VaultID)
	if err != nil {
		return nil, err
	}

	remaining, err := h.PositionService.Burn(tx, input.Caller, input.PositionID, input.Shares)
	if err != nil {
		return nil, err
	}

	gross, err := h.VaultService.Withdraw(ctx, tx, vault, input.Shares)
	if err != nil {
		return nil, err
	}

	quote, err := calculator.NewFeeQuote(gross, h.FeeBps)
	if err != nil {
		return nil, err
	}

	if quote.Fee.IsPositive() {
		_, err = h.TreasuryRepository.AddAccrual(tx, model.TreasuryAccrual{
			Asset:      vault.UnderlyingAsset,
			Amount:     quote.Fee,
			Source:     model.FeeSource_Sell,
			VaultID:    &vault.VaultID,
			PositionID: util.Int64Pointer(input.PositionID),
		})
		if err != nil {
			return nil, err
		}
	}

	// External transfers happen last, once every internal invariant for
	// this operation has been staged in the transaction.
	if quote.Fee.IsPositive() {
		err = h.AssetRepository.Transfer(ctx, vault.UnderlyingAsset, vault.CustodyAccount, h.TreasuryAccount, quote.Fee)
		if err != nil {
			return nil, err
		}
	}
	err = h.AssetRepository.Transfer(ctx, vault.UnderlyingAsset, vault.CustodyAccount, input.Caller, quote.Net)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	log.Infow("sell",
		"caller", input.Caller,
		"positionID", input.PositionID,
		"shares", input.Shares,
		"gross", quote.Gross,
		"fee", quote.Fee,
		"destroyed", remaining.IsZero(),
	)

	return &SellResult{
		Quote:             quote,
		NetProceeds:       quote.Net,
		PositionDestroyed: remaining.IsZero(),
	}, nil
}
