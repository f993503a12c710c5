package bootstrap

import (
	"os"

	"luvo/app/http/controllers/api/v1/tarot"
	"luvo/app/http/middlewares"
	"luvo/app/services"
	"luvo/pkg/config"
	"luvo/pkg/deck"
	"luvo/pkg/live"
	"luvo/pkg/llm"
	"luvo/pkg/logger"
	"luvo/pkg/metrics"
	"luvo/routes"
)

// SetupInterpreter 创建解读服务，AI 未配置或配置错误时走降级文本
func SetupInterpreter(collector *metrics.Collector) (*services.Interpreter, tarot.BreakerReporter) {
	var completer llm.Completer = llm.Unconfigured{}
	var breaker tarot.BreakerReporter

	client, err := SetupAI()
	if err != nil {
		logger.ErrorString("AI", "Setup", err.Error())
	} else if client != nil {
		completer = client
		breaker = client
	}

	timeout := config.GetDuration("ai.timeout", services.DefaultTimeout)
	return services.NewInterpreter(completer, timeout, collector), breaker
}

// SetupDependencies 组装 HTTP 服务需要的全部组件
func SetupDependencies() (routes.Dependencies, error) {
	// 会话存储，按驱动连接 Redis 或数据库
	store, err := SetupSession()
	if err != nil {
		return routes.Dependencies{}, err
	}

	collector := metrics.New("luvo")
	interpreter, breaker := SetupInterpreter(collector)
	service := services.NewTarotService(deck.NewDrawer(deck.NewRNG()), interpreter, store, collector)

	return routes.Dependencies{
		Service: service,
		Store:   store,
		AI:      breaker,
		Metrics: collector,
		Live: live.Config{
			ShuffleDelay: config.GetDuration("live.shuffle_delay", "300ms"),
			DrawDelay:    config.GetDuration("live.draw_delay", "500ms"),
		},
		AllowedOrigins: middlewares.AllowedOrigins(config.GetString("app.frontend_url")),
		RateLimit:      config.GetString("app.api_rate_limit"),
		CardsDir:       cardsDir(),
	}, nil
}

// cardsDir 牌面图片目录不存在时不挂载
func cardsDir() string {
	dir := config.GetString("app.cards_dir")
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.WarnString("Static", "Cards", "cards directory not found: "+dir)
		return ""
	}
	return dir
}
