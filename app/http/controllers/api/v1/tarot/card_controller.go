// Package tarot 塔罗牌 API 控制器
package tarot

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"luvo/app/models/card"
	"luvo/app/models/spread"
	"luvo/pkg/response"
)

// CardsController 牌库与牌阵
type CardsController struct{}

// NewCardsController 创建控制器
func NewCardsController() *CardsController {
	return &CardsController{}
}

// Index GET /api/cards
func (cc *CardsController) Index(c *gin.Context) {
	cards := card.All()
	response.JSON(c, gin.H{
		"cards": cards,
		"total": len(cards),
	})
}

// Show GET /api/cards/:id
func (cc *CardsController) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Abort400(c, "Card id must be an integer")
		return
	}

	found, ok := card.Find(id)
	if !ok {
		response.Abort404(c, "Card not found")
		return
	}
	response.JSON(c, found)
}

// Spreads GET /api/spreads
func (cc *CardsController) Spreads(c *gin.Context) {
	response.JSON(c, gin.H{
		"spreads": spread.All(),
	})
}
