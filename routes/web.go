package routes

import (
	"github.com/gin-gonic/gin"

	"luvo/app/http/controllers"
	"luvo/app/http/controllers/api/v1/tarot"
)

// RegisterWebRoutes 首页、静态牌面图片、健康检查和指标
func RegisterWebRoutes(r *gin.Engine, deps Dependencies) {
	pc := new(controllers.PagesController)
	r.GET("/", pc.Home)

	if deps.CardsDir != "" {
		r.Static("/cards", deps.CardsDir)
	}

	hc := tarot.NewHealthController(deps.Store, deps.AI)
	r.GET("/healthz", hc.Check)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
}
