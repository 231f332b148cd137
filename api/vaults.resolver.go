package api

import (
	"vaultcraft/internal/calculator"

	"github.com/gin-gonic/gin"
)

type vaultResponse struct {
	VaultID         string `json:"vaultID"`
	UnderlyingAsset string `json:"underlyingAsset"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	DacName         string `json:"dacName"`
	Color           string `json:"color"`
	TotalShares     string `json:"totalShares"`
	TotalAssets     string `json:"totalAssets"`
	SharePrice      string `json:"sharePrice"`
}

func (m ApiHandler) listVaults(c *gin.Context) {
	ctx := c.Request.Context()

	vaults, err := m.VaultRegistryService.ListVaults()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []vaultResponse{}
	for i := range vaults {
		vault := vaults[i]
		totalAssets, err := m.VaultService.TotalAssets(ctx, nil, &vault)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		out = append(out, vaultResponse{
			VaultID:         vault.VaultID.String(),
			UnderlyingAsset: vault.UnderlyingAsset,
			Name:            vault.Name,
			Symbol:          vault.Symbol,
			DacName:         vault.DacName,
			Color:           vault.Color,
			TotalShares:     vault.TotalShares.String(),
			TotalAssets:     totalAssets.String(),
			SharePrice:      calculator.SharePrice(vault.TotalShares, totalAssets).String(),
		})
	}

	c.JSON(200, out)
}
