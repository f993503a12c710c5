package config

import (
	"luvo/pkg/config"
)

func init() {
	config.Add("live", func() map[string]interface{} {
		return map[string]interface{}{
			// 洗牌进度消息间隔
			"shuffle_delay": config.Env("LIVE_SHUFFLE_DELAY", "300ms"),

			// 逐张发牌间隔
			"draw_delay": config.Env("LIVE_DRAW_DELAY", "500ms"),
		}
	})
}
