package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/db/models/postgres/public/table"
	"vaultcraft/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VaultRepository interface {
	Add(tx *sql.Tx, v model.Vault) (*model.Vault, error)
	Get(tx *sql.Tx, vaultID uuid.UUID) (*model.Vault, error)
	GetByAsset(tx *sql.Tx, asset string) (*model.Vault, error)
	List() ([]model.Vault, error)
	UpdateBalances(tx *sql.Tx, vaultID uuid.UUID, totalShares, idleBalance decimal.Decimal) error
}

type vaultRepositoryHandler struct {
	Db *sql.DB
}

func NewVaultRepository(db *sql.DB) VaultRepository {
	return vaultRepositoryHandler{Db: db}
}

func (h vaultRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h vaultRepositoryHandler) Add(tx *sql.Tx, v model.Vault) (*model.Vault, error) {
	v.CreatedAt = time.Now().UTC()
	v.ModifiedAt = time.Now().UTC()
	query := table.Vault.
		INSERT(table.Vault.MutableColumns).
		MODEL(v).
		RETURNING(table.Vault.AllColumns)

	out := model.Vault{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vault: %w", err)
	}

	return &out, nil
}

func (h vaultRepositoryHandler) Get(tx *sql.Tx, vaultID uuid.UUID) (*model.Vault, error) {
	query := table.Vault.
		SELECT(table.Vault.AllColumns).
		WHERE(table.Vault.VaultID.EQ(postgres.UUID(vaultID)))

	out := model.Vault{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: vault %s", domain.ErrUnknownVault, vaultID)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get vault %s: %w", vaultID, err)
	}

	return &out, nil
}

func (h vaultRepositoryHandler) GetByAsset(tx *sql.Tx, asset string) (*model.Vault, error) {
	query := table.Vault.
		SELECT(table.Vault.AllColumns).
		WHERE(table.Vault.UnderlyingAsset.EQ(postgres.String(asset)))

	out := model.Vault{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownVault, asset)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get vault for asset %s: %w", asset, err)
	}

	return &out, nil
}

// List returns all vaults in deployment order. The ordering is what the
// frontend enumerates, so it must be stable across calls.
func (h vaultRepositoryHandler) List() ([]model.Vault, error) {
	query := table.Vault.
		SELECT(table.Vault.AllColumns).
		ORDER_BY(table.Vault.CreatedAt.ASC(), table.Vault.VaultID.ASC())

	out := []model.Vault{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaults: %w", err)
	}

	return out, nil
}

func (h vaultRepositoryHandler) UpdateBalances(tx *sql.Tx, vaultID uuid.UUID, totalShares, idleBalance decimal.Decimal) error {
	query := table.Vault.
		UPDATE(table.Vault.TotalShares, table.Vault.IdleBalance, table.Vault.ModifiedAt).
		SET(totalShares, idleBalance, time.Now().UTC()).
		WHERE(table.Vault.VaultID.EQ(postgres.UUID(vaultID)))

	result, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update vault %s balances: %w", vaultID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("%w: vault %s", domain.ErrUnknownVault, vaultID)
	}

	return nil
}
