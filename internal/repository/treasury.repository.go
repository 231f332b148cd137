package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

// TreasuryRepository is the append-only protocol fee journal. Accruals are
// only ever inserted; draining the treasury is a governance action handled
// outside this service.
type TreasuryRepository interface {
	AddAccrual(tx *sql.Tx, a model.TreasuryAccrual) (*model.TreasuryAccrual, error)
	TotalsByAsset() (map[string]decimal.Decimal, error)
}

type treasuryRepositoryHandler struct {
	Db *sql.DB
}

func NewTreasuryRepository(db *sql.DB) TreasuryRepository {
	return treasuryRepositoryHandler{Db: db}
}

func (h treasuryRepositoryHandler) AddAccrual(tx *sql.Tx, a model.TreasuryAccrual) (*model.TreasuryAccrual, error) {
	a.CreatedAt = time.Now().UTC()
	query := table.TreasuryAccrual.
		INSERT(table.TreasuryAccrual.MutableColumns).
		MODEL(a).
		RETURNING(table.TreasuryAccrual.AllColumns)

	out := model.TreasuryAccrual{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert treasury accrual: %w", err)
	}

	return &out, nil
}

func (h treasuryRepositoryHandler) TotalsByAsset() (map[string]decimal.Decimal, error) {
	query := table.TreasuryAccrual.
		SELECT(
			table.TreasuryAccrual.Asset.AS("asset"),
			postgres.SUMf(table.TreasuryAccrual.Amount).AS("total"),
		).
		GROUP_BY(table.TreasuryAccrual.Asset).
		ORDER_BY(table.TreasuryAccrual.Asset.ASC())

	rows := []struct {
		Asset string
		Total decimal.Decimal
	}{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to total treasury accruals: %w", err)
	}

	out := map[string]decimal.Decimal{}
	for _, row := range rows {
		out[row.Asset] = row.Total
	}

	return out, nil
}
