package api

import (
	"vaultcraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type sellRequest struct {
	PositionID int64  `json:"positionID"`
	Shares     string `json:"shares"`
}

type sellResponse struct {
	GrossProceeds     string `json:"grossProceeds"`
	Fee               string `json:"fee"`
	NetProceeds       string `json:"netProceeds"`
	PositionDestroyed bool   `json:"positionDestroyed"`
}

func (m ApiHandler) sell(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody sellRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	account, err := callerAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	shares, err := decimal.NewFromString(requestBody.Shares)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.RouterService.Sell(ctx, service.SellInput{
		Caller:     account,
		PositionID: requestBody.PositionID,
		Shares:     shares,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, sellResponse{
		GrossProceeds:     result.Quote.Gross.String(),
		Fee:               result.Quote.Fee.String(),
		NetProceeds:       result.NetProceeds.String(),
		PositionDestroyed: result.PositionDestroyed,
	})
}
