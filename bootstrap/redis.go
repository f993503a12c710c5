package bootstrap

import (
	"fmt"

	"luvo/pkg/config"
	"luvo/pkg/redis"
)

// SetupRedis 初始化 Redis，连接失败会 panic
func SetupRedis() *redis.RedisClient {
	redis.ConnectRedis(
		fmt.Sprintf("%v:%v", config.GetString("redis.host"), config.GetString("redis.port")),
		config.GetString("redis.username"),
		config.GetString("redis.password"),
		config.GetInt("redis.database"),
	)
	return redis.Redis
}
