package bootstrap

import (
	"fmt"

	"luvo/app/repositories"
	"luvo/pkg/config"
	"luvo/pkg/logger"
	"luvo/pkg/session"
)

// 会话存储驱动
const (
	SessionDriverMemory   = "memory"
	SessionDriverRedis    = "redis"
	SessionDriverDatabase = "database"
)

// SetupSession 按 session.driver 选择会话存储，redis 与 database 驱动会先建立连接
func SetupSession() (session.Store, error) {
	driver := config.GetString("session.driver", SessionDriverMemory)

	var store session.Store
	switch driver {
	case SessionDriverMemory:
		store = session.NewMemoryStore()
	case SessionDriverRedis:
		store = session.NewRedisStore(
			SetupRedis(),
			config.GetString("session.prefix", "luvo"),
			config.GetDuration("session.ttl"),
		)
	case SessionDriverDatabase:
		store = repositories.NewReadingRepository(SetupDB())
	default:
		return nil, fmt.Errorf("unsupported session driver %q", driver)
	}

	logger.InfoString("Session", "Setup", "session driver: "+driver)
	return store, nil
}
