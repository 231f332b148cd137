package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"vaultcraft/api"
	integration_tests "vaultcraft/integration-tests"
	"vaultcraft/internal/repository"
	"vaultcraft/internal/service"
	"vaultcraft/internal/util"
	"vaultcraft/pkg/chaingateway"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	vaultRepository := repository.NewVaultRepository(dbConn)
	positionRepository := repository.NewPositionRepository(dbConn)
	strategyRepository := repository.NewStrategyRepository(dbConn)
	treasuryRepository := repository.NewTreasuryRepository(dbConn)
	vaultEventRepository := repository.NewVaultEventRepository(dbConn)

	var (
		assetRepository          repository.AssetRepository
		exchangeRouterRepository repository.ExchangeRouterRepository
		poolRepository           repository.PoolRepository
		farmRepository           repository.FarmRepository
		accessGateRepository     repository.AccessGateRepository
	)
	if strings.EqualFold(os.Getenv("VAULTCRAFT_ENV"), "test") {
		// the sim ledger backs every external surface, so the whole
		// engine runs without a gateway process
		sim := integration_tests.NewSimChainForTests()
		assetRepository = sim
		exchangeRouterRepository = sim
		poolRepository = sim
		farmRepository = sim
		accessGateRepository = sim
	} else {
		gateway := chaingateway.NewClient(http.DefaultClient, secrets.ChainGateway, secrets.ChainGatewayKey)
		assetRepository = gateway
		exchangeRouterRepository = gateway
		poolRepository = gateway
		farmRepository = gateway
		accessGateRepository = gateway
	}

	swapBridgeService := service.NewSwapBridgeService(exchangeRouterRepository)
	strategyService := service.NewStrategyService(
		dbConn,
		strategyRepository,
		vaultEventRepository,
		swapBridgeService,
		poolRepository,
		farmRepository,
	)
	vaultService := service.NewVaultService(
		vaultRepository,
		strategyRepository,
		vaultEventRepository,
		strategyService,
	)
	positionService := service.NewPositionService(positionRepository)
	vaultRegistryService := service.NewVaultRegistryService(dbConn, vaultRepository, vaultEventRepository)
	routerService := service.NewRouterService(
		dbConn,
		secrets.FeeBps,
		secrets.TreasuryAccount,
		vaultRepository,
		treasuryRepository,
		assetRepository,
		accessGateRepository,
		vaultService,
		positionService,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		JwtSecret:            secrets.JwtSecret,
		RouterService:        routerService,
		VaultRegistryService: vaultRegistryService,
		VaultService:         vaultService,
		StrategyService:      strategyService,
		PositionService:      positionService,
		VaultEventRepository: vaultEventRepository,
		TreasuryRepository:   treasuryRepository,
	}

	return apiHandler, nil
}
