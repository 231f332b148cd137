package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vaultcraft/internal/db/models/postgres/public/model"
	"vaultcraft/internal/domain"
	"vaultcraft/internal/logger"
	"vaultcraft/internal/repository"
	"vaultcraft/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VaultRegistryService deploys and indexes one vault per underlying asset.
type VaultRegistryService interface {
	DeployVault(ctx context.Context, input DeployVaultInput) (*model.Vault, error)
	GetVault(asset string) (*model.Vault, error)
	ListVaults() ([]model.Vault, error)
}

type DeployVaultInput struct {
	UnderlyingAsset string
	Name            string
	Symbol          string
	DacName         string
	Color           string
}

type vaultRegistryServiceHandler struct {
	Db                   *sql.DB
	VaultRepository      repository.VaultRepository
	VaultEventRepository repository.VaultEventRepository
}

func NewVaultRegistryService(
	db *sql.DB,
	vaultRepository repository.VaultRepository,
	vaultEventRepository repository.VaultEventRepository,
) VaultRegistryService {
	return vaultRegistryServiceHandler{
		Db:                   db,
		VaultRepository:      vaultRepository,
		VaultEventRepository: vaultEventRepository,
	}
}

func (h vaultRegistryServiceHandler) DeployVault(ctx context.Context, input DeployVaultInput) (*model.Vault, error) {
	log := logger.FromContext(ctx)

	if input.UnderlyingAsset == "" {
		return nil, fmt.Errorf("%w: underlying asset is required", domain.ErrUnknownAsset)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = h.VaultRepository.GetByAsset(tx, input.UnderlyingAsset)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateVault, input.UnderlyingAsset)
	} else if !errors.Is(err, domain.ErrUnknownVault) {
		return nil, err
	}

	vault, err := h.VaultRepository.Add(tx, model.Vault{
		UnderlyingAsset: input.UnderlyingAsset,
		CustodyAccount:  fmt.Sprintf("vault:%s", uuid.New()),
		Name:            input.Name,
		Symbol:          input.Symbol,
		DacName:         input.DacName,
		Color:           input.Color,
		TotalShares:     decimal.Zero,
		IdleBalance:     decimal.Zero,
	})
	if err != nil {
		return nil, err
	}

	// The deployment event is what the frontend discovers new vaults from.
	_, err = h.VaultEventRepository.Add(tx, model.VaultEvent{
		VaultID:    vault.VaultID,
		EventType:  model.VaultEventType_Deployed,
		SharePrice: util.DecimalPointer(decimal.NewFromInt(1)),
	})
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	log.Infow("deployed vault",
		"vaultID", vault.VaultID,
		"asset", vault.UnderlyingAsset,
		"custodyAccount", vault.CustodyAccount,
	)

	return vault, nil
}

func (h vaultRegistryServiceHandler) GetVault(asset string) (*model.Vault, error) {
	return h.VaultRepository.GetByAsset(nil, asset)
}

func (h vaultRegistryServiceHandler) ListVaults() ([]model.Vault, error) {
	return h.VaultRepository.List()
}
