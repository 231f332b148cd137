package api

import (
	"vaultcraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type buyRequest struct {
	Asset            string   `json:"asset"`
	Amount           string   `json:"amount"`
	EligibilityProof []string `json:"eligibilityProof"`
}

type buyResponse struct {
	PositionID   int64  `json:"positionID"`
	SharesMinted string `json:"sharesMinted"`
	Fee          string `json:"fee"`
	NetDeposited string `json:"netDeposited"`
}

func (m ApiHandler) buy(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody buyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	account, err := callerAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	amount, err := decimal.NewFromString(requestBody.Amount)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.RouterService.Buy(ctx, service.BuyInput{
		Caller:           account,
		Asset:            requestBody.Asset,
		GrossAmount:      amount,
		EligibilityProof: requestBody.EligibilityProof,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, buyResponse{
		PositionID:   result.PositionID,
		SharesMinted: result.SharesMinted.String(),
		Fee:          result.Quote.Fee.String(),
		NetDeposited: result.Quote.Net.String(),
	})
}
