package api

import (
	"vaultcraft/internal/service"

	"github.com/gin-gonic/gin"
)

type deployVaultRequest struct {
	UnderlyingAsset string `json:"underlyingAsset"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	DacName         string `json:"dacName"`
	Color           string `json:"color"`
}

type deployVaultResponse struct {
	VaultID        string `json:"vaultID"`
	CustodyAccount string `json:"custodyAccount"`
}

func (m ApiHandler) deployVault(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody deployVaultRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	vault, err := m.VaultRegistryService.DeployVault(ctx, service.DeployVaultInput{
		UnderlyingAsset: requestBody.UnderlyingAsset,
		Name:            requestBody.Name,
		Symbol:          requestBody.Symbol,
		DacName:         requestBody.DacName,
		Color:           requestBody.Color,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, deployVaultResponse{
		VaultID:        vault.VaultID.String(),
		CustodyAccount: vault.CustodyAccount,
	})
}
