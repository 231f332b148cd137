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

type StrategyRepository interface {
	Add(tx *sql.Tx, s model.Strategy) (*model.Strategy, error)
	// GetByVault returns (nil, nil) when the vault has no strategy attached.
	GetByVault(tx *sql.Tx, vaultID uuid.UUID) (*model.Strategy, error)
	UpdateBalances(tx *sql.Tx, strategyID uuid.UUID, lpBalance, farmShareBalance decimal.Decimal) error
}

type strategyRepositoryHandler struct {
	Db *sql.DB
}

func NewStrategyRepository(db *sql.DB) StrategyRepository {
	return strategyRepositoryHandler{Db: db}
}

func (h strategyRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h strategyRepositoryHandler) Add(tx *sql.Tx, s model.Strategy) (*model.Strategy, error) {
	s.CreatedAt = time.Now().UTC()
	s.ModifiedAt = time.Now().UTC()
	query := table.Strategy.
		INSERT(table.Strategy.MutableColumns).
		MODEL(s).
		RETURNING(table.Strategy.AllColumns)

	out := model.Strategy{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert strategy: %w", err)
	}

	return &out, nil
}

func (h strategyRepositoryHandler) GetByVault(tx *sql.Tx, vaultID uuid.UUID) (*model.Strategy, error) {
	query := table.Strategy.
		SELECT(table.Strategy.AllColumns).
		WHERE(table.Strategy.VaultID.EQ(postgres.UUID(vaultID)))

	out := model.Strategy{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get strategy for vault %s: %w", vaultID, err)
	}

	return &out, nil
}

func (h strategyRepositoryHandler) UpdateBalances(tx *sql.Tx, strategyID uuid.UUID, lpBalance, farmShareBalance decimal.Decimal) error {
	query := table.Strategy.
		UPDATE(table.Strategy.LpBalance, table.Strategy.FarmShareBalance, table.Strategy.ModifiedAt).
		SET(lpBalance, farmShareBalance, time.Now().UTC()).
		WHERE(table.Strategy.StrategyID.EQ(postgres.UUID(strategyID)))

	result, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update strategy %s balances: %w", strategyID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("strategy %s not found", strategyID)
	}

	return nil
}
