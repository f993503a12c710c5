package tarot

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"luvo/pkg/response"
	"luvo/pkg/session"
)

// BreakerReporter 报告 AI 熔断器状态和实例可用性
type BreakerReporter interface {
	BreakerState() string
	HealthCheck(ctx context.Context) error
}

// HealthController 健康检查
type HealthController struct {
	store session.Store
	ai    BreakerReporter
}

// NewHealthController 创建控制器，ai 为 nil 表示未配置 AI
func NewHealthController(store session.Store, ai BreakerReporter) *HealthController {
	return &HealthController{
		store: store,
		ai:    ai,
	}
}

// Check GET /healthz
func (hc *HealthController) Check(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"store":  "ok",
		"ai":     "not_configured",
		"time":   time.Now().Unix(),
	}
	if hc.ai != nil {
		status["ai"] = hc.ai.BreakerState()
		// AI 不可用时解读走降级文本，服务本身仍然可用
		if err := hc.ai.HealthCheck(c.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["ai_error"] = err.Error()
		}
	}

	// 检查会话存储
	if pinger, ok := hc.store.(session.Pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := pinger.Ping(ctx); err != nil {
			status["status"] = "degraded"
			status["store"] = err.Error()
			response.Abort503(c, status, "Session store unavailable")
			return
		}
	}

	c.JSON(http.StatusOK, status)
}
