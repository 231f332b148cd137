package api

import (
	"vaultcraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type attachStrategyRequest struct {
	VaultID        string `json:"vaultID"`
	PoolID         string `json:"poolID"`
	FarmAccount    string `json:"farmAccount"`
	PairAsset      string `json:"pairAsset"`
	InvestBps      int32  `json:"investBps"`
	MaxSlippageBps int32  `json:"maxSlippageBps"`
}

func (m ApiHandler) attachStrategy(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody attachStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	vaultID, err := uuid.Parse(requestBody.VaultID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	strategy, err := m.StrategyService.AttachStrategy(ctx, service.AttachStrategyInput{
		VaultID:        vaultID,
		PoolID:         requestBody.PoolID,
		FarmAccount:    requestBody.FarmAccount,
		PairAsset:      requestBody.PairAsset,
		InvestBps:      requestBody.InvestBps,
		MaxSlippageBps: requestBody.MaxSlippageBps,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"strategyID": strategy.StrategyID.String(),
	})
}
