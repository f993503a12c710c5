package config

import (
	"luvo/pkg/config"
)

func init() {
	config.Add("ai", func() map[string]interface{} {
		return map[string]interface{}{
			// OpenAI 兼容接口地址，多个用逗号分隔，为空表示不启用 AI
			"urls": config.Env("AI_API_URLS", ""),

			// 与 urls 一一对应，数量不足时复用最后一个
			"api_keys": config.Env("AI_API_KEYS", ""),

			"model": config.Env("AI_MODEL", "gpt-4"),

			// 单次解读的最长等待时间
			"timeout": config.Env("AI_TIMEOUT", "60s"),

			// 出站代理，支持 http(s)/socks5
			"proxy_url": config.Env("PROXY_URL", ""),

			// 出站限速，每秒请求数，0 表示不限
			"rate_limit": config.Env("AI_RATE_LIMIT", 0),
			"rate_burst": config.Env("AI_RATE_BURST", 1),
		}
	})
}
