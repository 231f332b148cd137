package api

import (
	"vaultcraft/internal/calculator"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) vaultMetrics(c *gin.Context) {
	asset := c.Param("asset")

	vault, err := m.VaultRegistryService.GetVault(asset)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	points, err := m.VaultEventRepository.SharePricePoints(vault.VaultID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	metrics, err := calculator.ComputeVaultMetrics(points)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, metrics)
}
