package bootstrap

import (
	"fmt"

	"luvo/app/services"
	"luvo/pkg/config"
	"luvo/pkg/llm"
	"luvo/pkg/logger"
)

// SetupAI 初始化 AI 客户端，未配置接口地址时返回 nil
func SetupAI() (*llm.Client, error) {
	urls := config.GetStringSlice("ai.urls")
	if len(urls) == 0 {
		logger.WarnString("AI", "Setup", "AI_API_URLS is empty, interpretations will use the fallback text")
		return nil, nil
	}

	client, err := llm.NewClient(llm.Config{
		URLs:         urls,
		APIKeys:      config.GetStringSlice("ai.api_keys"),
		Model:        config.GetString("ai.model"),
		SystemPrompt: services.SystemPrompt,
		Timeout:      config.GetDuration("ai.timeout", services.DefaultTimeout),
		ProxyURL:     config.GetString("ai.proxy_url"),
		RateLimit:    config.GetFloat64("ai.rate_limit"),
		RateBurst:    config.GetInt("ai.rate_burst"),
	})
	if err != nil {
		return nil, fmt.Errorf("setup ai client: %w", err)
	}

	logger.InfoString("AI", "Setup", fmt.Sprintf("AI client ready [URLs: %d, model: %s]", len(urls), config.GetString("ai.model")))
	return client, nil
}
