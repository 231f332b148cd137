package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vaultcraft/internal/calculator"
	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// VaultEventRepository journals vault lifecycle events (deployment, deposits,
// withdrawals, strategy flows). Deployment events are the discoverable record
// a frontend watches for new vaults; share-price carrying events feed the
// metrics endpoint.
type VaultEventRepository interface {
	Add(tx *sql.Tx, e model.VaultEvent) (*model.VaultEvent, error)
	List(vaultID uuid.UUID) ([]model.VaultEvent, error)
	SharePricePoints(vaultID uuid.UUID) ([]calculator.SharePricePoint, error)
}

type vaultEventRepositoryHandler struct {
	Db *sql.DB
}

func NewVaultEventRepository(db *sql.DB) VaultEventRepository {
	return vaultEventRepositoryHandler{Db: db}
}

func (h vaultEventRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h vaultEventRepositoryHandler) Add(tx *sql.Tx, e model.VaultEvent) (*model.VaultEvent, error) {
	e.CreatedAt = time.Now().UTC()
	query := table.VaultEvent.
		INSERT(table.VaultEvent.MutableColumns).
		MODEL(e).
		RETURNING(table.VaultEvent.AllColumns)

	out := model.VaultEvent{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vault event: %w", err)
	}

	return &out, nil
}

func (h vaultEventRepositoryHandler) List(vaultID uuid.UUID) ([]model.VaultEvent, error) {
	query := table.VaultEvent.
		SELECT(table.VaultEvent.AllColumns).
		WHERE(table.VaultEvent.VaultID.EQ(postgres.UUID(vaultID))).
		ORDER_BY(table.VaultEvent.VaultEventID.ASC())

	out := []model.VaultEvent{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for vault %s: %w", vaultID, err)
	}

	return out, nil
}

func (h vaultEventRepositoryHandler) SharePricePoints(vaultID uuid.UUID) ([]calculator.SharePricePoint, error) {
	query := table.VaultEvent.
		SELECT(table.VaultEvent.SharePrice, table.VaultEvent.CreatedAt).
		WHERE(
			table.VaultEvent.VaultID.EQ(postgres.UUID(vaultID)).
				AND(table.VaultEvent.SharePrice.IS_NOT_NULL()),
		).
		ORDER_BY(table.VaultEvent.CreatedAt.ASC())

	rows := []model.VaultEvent{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to load share prices for vault %s: %w", vaultID, err)
	}

	out := make([]calculator.SharePricePoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, calculator.SharePricePoint{
			Price: *row.SharePrice,
			At:    row.CreatedAt,
		})
	}

	return out, nil
}
