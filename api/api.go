package api

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vaultcraft/internal/domain"
	"vaultcraft/internal/logger"
	"vaultcraft/internal/repository"
	"vaultcraft/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                   *sql.DB
	JwtSecret            string
	RouterService        service.RouterService
	VaultRegistryService service.VaultRegistryService
	VaultService         service.VaultService
	StrategyService      service.StrategyService
	PositionService      service.PositionService
	VaultEventRepository repository.VaultEventRepository
	TreasuryRepository   repository.TreasuryRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to vaultcraft"})
	})
	router.GET("/vaults", m.listVaults)
	router.GET("/vaults/:asset/metrics", m.vaultMetrics)
	router.GET("/treasury", m.treasury)

	authenticated := router.Group("/", m.authMiddleware)
	authenticated.POST("/buy", m.buy)
	authenticated.POST("/sell", m.sell)
	authenticated.GET("/positions", m.listPositions)
	authenticated.POST("/deployVault", m.deployVault)
	authenticated.POST("/attachStrategy", m.attachStrategy)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// statusCodeFor maps sentinel failures onto HTTP codes; anything unmapped is
// a 500.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientShares),
		errors.Is(err, domain.ErrStrategyDivestShortfall),
		errors.Is(err, domain.ErrSlippageExceeded):
		return 400
	case errors.Is(err, domain.ErrNotEligible),
		errors.Is(err, domain.ErrNotOwner):
		return 403
	case errors.Is(err, domain.ErrUnknownVault),
		errors.Is(err, domain.ErrUnknownAsset):
		return 404
	case errors.Is(err, domain.ErrDuplicateVault):
		return 409
	case errors.Is(err, domain.ErrVaultBusy):
		return 409
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientAllowance):
		return 402
	}
	return 500
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusCodeFor(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnw("request failed",
		"path", c.Request.URL.Path,
		"status", code,
		"error", err.Error(),
	)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.New()
	ctx.Request = ctx.Request.WithContext(
		logger.AddToContext(ctx.Request.Context(), log),
	)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}
