package config

import (
	"luvo/pkg/config"
)

func init() {
	config.Add("session", func() map[string]interface{} {
		return map[string]interface{}{
			// 会话存储驱动，可选 memory、redis、database
			"driver": config.Env("SESSION_DRIVER", "memory"),

			// redis 驱动的键前缀
			"prefix": config.Env("SESSION_PREFIX", "luvo"),

			// redis 驱动的过期时间，0 表示不过期
			"ttl": config.Env("SESSION_TTL", "0s"),
		}
	})
}
