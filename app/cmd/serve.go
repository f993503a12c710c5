package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"luvo/bootstrap"
	"luvo/pkg/app"
	"luvo/pkg/config"
	"luvo/pkg/console"
	"luvo/pkg/logger"
)

// CmdServe 启动 HTTP 服务
var CmdServe = &cobra.Command{
	Use:   "serve",
	Short: "Start web server",
	Run:   runWeb,
	Args:  cobra.NoArgs,
}

func runWeb(cmd *cobra.Command, args []string) {
	// 初始化应用组件
	deps, err := bootstrap.SetupDependencies()
	console.ExitIf(err)

	// 本地环境以外使用生产模式，减少不必要的日志输出
	if !app.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎实例并设置路由
	router := gin.New()
	bootstrap.SetupRoute(router, deps)

	server := &http.Server{
		Addr:              ":" + config.Get("app.port"),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 创建系统信号监听器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.InfoString("Server", "Start", "listening on "+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorString("Server", "Start", err.Error())
			console.Exit("Unable to start server, error: " + err.Error())
		}
	}()

	// 等待中断信号
	<-quit
	logger.InfoString("Server", "Shutdown", "正在关闭服务器...")

	// 创建一个带超时的上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := server.Shutdown(ctx); err != nil {
		console.Exit("服务器关闭异常: " + err.Error())
	}

	logger.InfoString("Server", "Shutdown", "服务器已成功关闭")
}
