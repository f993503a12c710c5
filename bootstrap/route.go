package bootstrap

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"luvo/app/http/middlewares"
	"luvo/pkg/response"
	"luvo/routes"
)

// SetupRoute 路由初始化
// 该方法用于设置 Web 应用的路由配置，包括：
// 1. 注册全局中间件
// 2. 注册 API 与页面路由
// 3. 配置 404 处理器
func SetupRoute(router *gin.Engine, deps routes.Dependencies) {
	// 注册全局中间件
	registerGlobalMiddleWare(router, deps)

	// 具体路由定义在 routes 包中
	routes.RegisterAPIRoutes(router, deps)
	routes.RegisterWebRoutes(router, deps)

	// 配置 404 路由处理器
	setup404Handler(router)
}

// registerGlobalMiddleWare 注册全局中间件
// 设置应用级别的中间件，作用于所有请求
func registerGlobalMiddleWare(router *gin.Engine, deps routes.Dependencies) {
	router.Use(
		middlewares.RequestID(),               // 请求 ID
		middlewares.Logger(),                  // 记录请求日志
		middlewares.Recovery(),                // 在发生 panic 时恢复
		middlewares.Cors(deps.AllowedOrigins), // 跨域白名单
	)
	if deps.Metrics != nil {
		router.Use(middlewares.Metrics(deps.Metrics))
	}
}

// setup404Handler 配置 404 请求处理器
// 根据请求的 Accept 头来返回不同格式的 404 响应：
// - 当请求接受 HTML 时返回 HTML 格式的 404 页面
// - 其他情况返回 JSON 格式的错误信息
func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		// 获取请求头中的 Accept 信息
		acceptString := c.Request.Header.Get("Accept")

		// 根据 Accept 返回相应格式的响应
		if strings.Contains(acceptString, "text/html") {
			c.String(http.StatusNotFound, "404 page not found")
		} else {
			response.Abort404(c, "Route not defined, check the url and request method")
		}
	})
}
