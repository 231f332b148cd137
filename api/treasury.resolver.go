package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) treasury(c *gin.Context) {
	totals, err := m.TreasuryRepository.TotalsByAsset()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := map[string]string{}
	for asset, total := range totals {
		out[asset] = total.String()
	}

	c.JSON(200, out)
}
