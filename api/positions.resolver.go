package api

import (
	"github.com/gin-gonic/gin"
)

type positionResponse struct {
	PositionID int64  `json:"positionID"`
	VaultID    string `json:"vaultID"`
	Shares     string `json:"shares"`
}

func (m ApiHandler) listPositions(c *gin.Context) {
	account, err := callerAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	positions, err := m.PositionService.ListForOwner(account)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []positionResponse{}
	for _, position := range positions {
		out = append(out, positionResponse{
			PositionID: position.PositionID,
			VaultID:    position.VaultID.String(),
			Shares:     position.Shares.String(),
		})
	}

	c.JSON(200, out)
}
