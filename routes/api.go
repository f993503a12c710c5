// Package routes 注册路由
package routes

import (
	"github.com/gin-gonic/gin"

	"luvo/app/http/controllers/api/v1/tarot"
	"luvo/app/http/middlewares"
	"luvo/app/services"
	"luvo/pkg/live"
	"luvo/pkg/metrics"
	"luvo/pkg/session"
)

// 路由限流配置
const (
	// 🌍 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 🎴 创建塔罗牌解读限流：每小时每IP 100 请求
	CreateReadingLimit = "100-H"
)

// Dependencies 路由需要的服务
type Dependencies struct {
	Service        *services.TarotService
	Store          session.Store
	AI             tarot.BreakerReporter
	Metrics        *metrics.Collector
	Live           live.Config
	AllowedOrigins []string
	RateLimit      string
	CardsDir       string
}

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine, deps Dependencies) {
	rateLimit := deps.RateLimit
	if rateLimit == "" {
		rateLimit = GlobalRateLimit
	}

	api := r.Group("/api")
	api.Use(
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(rateLimit),
	)

	cc := tarot.NewCardsController()
	rc := tarot.NewReadingController(deps.Service)

	// 🃏 牌库
	// GET /api/cards
	// GET /api/cards/:id
	api.GET("/cards", cc.Index)
	api.GET("/cards/:id", cc.Show)

	// 📖 牌阵
	api.GET("/spreads", cc.Spreads)

	// 📝 创建解读，抽牌后调用 AI，请求频率：每小时每IP最多100次
	api.POST("/reading",
		middlewares.LimitPerRoute(CreateReadingLimit),
		rc.Store,
	)
	api.GET("/reading/:session_id", rc.Show)

	// 🔮 解读已有的牌
	api.POST("/interpret",
		middlewares.LimitPerRoute(CreateReadingLimit),
		rc.Interpret,
	)

	// 🌞 每日一牌
	api.GET("/daily", rc.Daily)

	// 📡 实时抽牌
	lc := tarot.NewLiveController(deps.Service, deps.Live, deps.Metrics, deps.AllowedOrigins)
	r.GET("/ws/live-reading", lc.Connect)
}
