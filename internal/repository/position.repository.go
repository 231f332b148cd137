package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PositionRepository interface {
	Add(tx *sql.Tx, p model.Position) (*model.Position, error)
	Get(tx *sql.Tx, positionID int64) (*model.Position, error)
	ListByOwner(owner string) ([]model.Position, error)
	UpdateShares(tx *sql.Tx, positionID int64, shares decimal.Decimal) error
	Delete(tx *sql.Tx, positionID int64) error
	SumSharesByVault(tx *sql.Tx, vaultID uuid.UUID) (decimal.Decimal, error)
}

type positionRepositoryHandler struct {
	Db *sql.DB
}

func NewPositionRepository(db *sql.DB) PositionRepository {
	return positionRepositoryHandler{Db: db}
}

func (h positionRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h positionRepositoryHandler) Add(tx *sql.Tx, p model.Position) (*model.Position, error) {
	p.CreatedAt = time.Now().UTC()
	p.ModifiedAt = time.Now().UTC()
	query := table.Position.
		INSERT(table.Position.MutableColumns).
		MODEL(p).
		RETURNING(table.Position.AllColumns)

	out := model.Position{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert position: %w", err)
	}

	return &out, nil
}

func (h positionRepositoryHandler) Get(tx *sql.Tx, positionID int64) (*model.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		WHERE(table.Position.PositionID.EQ(postgres.Int64(positionID)))

	out := model.Position{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("position %d not found: %w", positionID, err)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get position %d: %w", positionID, err)
	}

	return &out, nil
}

func (h positionRepositoryHandler) ListByOwner(owner string) ([]model.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		WHERE(table.Position.OwnerAccount.EQ(postgres.String(owner))).
		ORDER_BY(table.Position.PositionID.ASC())

	out := []model.Position{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions for %s: %w", owner, err)
	}

	return out, nil
}

func (h positionRepositoryHandler) UpdateShares(tx *sql.Tx, positionID int64, shares decimal.Decimal) error {
	query := table.Position.
		UPDATE(table.Position.Shares, table.Position.ModifiedAt).
		SET(shares, time.Now().UTC()).
		WHERE(table.Position.PositionID.EQ(postgres.Int64(positionID)))

	result, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update position %d: %w", positionID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("position %d not found", positionID)
	}

	return nil
}

func (h positionRepositoryHandler) Delete(tx *sql.Tx, positionID int64) error {
	query := table.Position.
		DELETE().
		WHERE(table.Position.PositionID.EQ(postgres.Int64(positionID)))

	result, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete position %d: %w", positionID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("position %d not found", positionID)
	}

	return nil
}

// SumSharesByVault totals position-held shares for a vault. The positions are
// the only holders of vault shares, so this must always reconcile with the
// vault row's total_shares.
func (h positionRepositoryHandler) SumSharesByVault(tx *sql.Tx, vaultID uuid.UUID) (decimal.Decimal, error) {
	query := table.Position.
		SELECT(postgres.SUMf(table.Position.Shares).AS("total")).
		WHERE(table.Position.VaultID.EQ(postgres.UUID(vaultID)))

	var out struct {
		Total *decimal.Decimal
	}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum shares for vault %s: %w", vaultID, err)
	}
	if out.Total == nil {
		return decimal.Zero, nil
	}

	return *out.Total, nil
}
