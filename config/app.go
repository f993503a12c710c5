package config

import "luvo/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// 应用名称
			"name": config.Env("APP_NAME", "luvo"),

			// 当前环境，用以区分多环境，一般为 local, stage, production, testing
			"env": config.Env("APP_ENV", "production"),

			// 是否进入调试模式
			"debug": config.Env("APP_DEBUG", false),

			// 应用服务端口，部署平台一般注入 PORT
			"port": config.Env("PORT", config.Env("APP_PORT", "8000")),

			// 设置时区，解读时间戳和日志记录里会使用到
			"timezone": config.Env("TIMEZONE", "UTC"),

			// 前端地址，加入跨域白名单
			"frontend_url": config.Env("FRONTEND_URL", "http://localhost:3000"),

			// 牌面图片目录，挂载到 /cards
			"cards_dir": config.Env("CARDS_DIR", "cards"),

			// API 全局限流，格式 N-S|M|H|D
			"api_rate_limit": config.Env("API_RATE_LIMIT", "30000-H"),
		}
	})
}
