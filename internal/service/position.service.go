package service

import (
	"database/sql"
	"fmt"

	"vaultcraft/internal/calculator"
	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/domain"
	"vaultcraft/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionService tokenizes vault-share claims as discrete transferable
// position records. It is the sole source of truth for per-owner share
// attribution: the vault itself only tracks aggregate totals, so one owner
// can hold several independently transferable claims on the same vault.
type PositionService interface {
	Mint(tx *sql.Tx, owner string, vaultID uuid.UUID, shares decimal.Decimal) (*model.Position, error)
	// Burn reduces the position's balance, deleting the record when it
	// reaches zero. Returns the remaining share balance.
	Burn(tx *sql.Tx, caller string, positionID int64, shares decimal.Decimal) (decimal.Decimal, error)
	Get(tx *sql.Tx, positionID int64) (*model.Position, error)
	ListForOwner(owner string) ([]model.Position, error)
}

type positionServiceHandler struct {
	PositionRepository repository.PositionRepository
}

func NewPositionService(positionRepository repository.PositionRepository) PositionService {
	return positionServiceHandler{
		PositionRepository: positionRepository,
	}
}

func (h positionServiceHandler) Mint(tx *sql.Tx, owner string, vaultID uuid.UUID, shares decimal.Decimal) (*model.Position, error) {
	if err := calculator.ValidateAmount(shares); err != nil {
		return nil, err
	}

	return h.PositionRepository.Add(tx, model.Position{
		VaultID:      vaultID,
		OwnerAccount: owner,
		Shares:       shares,
	})
}

func (h positionServiceHandler) Burn(tx *sql.Tx, caller string, positionID int64, shares decimal.Decimal) (decimal.Decimal, error) {
	if err := calculator.ValidateAmount(shares); err != nil {
		return decimal.Zero, err
	}

	position, err := h.PositionRepository.Get(tx, positionID)
	if err != nil {
		return decimal.Zero, err
	}
	if position.OwnerAccount != caller {
		return decimal.Zero, fmt.Errorf("%w: position %d", domain.ErrNotOwner, positionID)
	}
	if shares.GreaterThan(position.Shares) {
		return decimal.Zero, fmt.Errorf("%w: burning %s of %s held", domain.ErrInsufficientShares, shares, position.Shares)
	}

	remaining := position.Shares.Sub(shares)
	if remaining.IsZero() {
		err = h.PositionRepository.Delete(tx, positionID)
	} else {
		err = h.PositionRepository.UpdateShares(tx, positionID, remaining)
	}
	if err != nil {
		return decimal.Zero, err
	}

	return remaining, nil
}

func (h positionServiceHandler) Get(tx *sql.Tx, positionID int64) (*model.Position, error) {
	return h.PositionRepository.Get(tx, positionID)
}

func (h positionServiceHandler) ListForOwner(owner string) ([]model.Position, error) {
	return h.PositionRepository.ListByOwner(owner)
}
