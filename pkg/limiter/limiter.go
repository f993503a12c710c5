// Package limiter 处理限流逻辑
package limiter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	limiterlib "github.com/ulule/limiter/v3"
	smemory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"luvo/pkg/config"
	"luvo/pkg/logger"
	"luvo/pkg/redis"
)

var (
	store     limiterlib.Store
	storeOnce sync.Once
)

// ParseLimit 解析限流配置字符串
// 支持的格式: "5-S"、"10-M"、"1000-H"、"2000-D"
func ParseLimit(limit string) (limiterlib.Rate, error) {
	rate, err := limiterlib.NewRateFromFormatted(limit)
	if err != nil {
		return limiterlib.Rate{}, fmt.Errorf("invalid limit format %q: %w", limit, err)
	}
	return rate, nil
}

// GetKeyIP 获取 Limitor 的 Key，IP
func GetKeyIP(c *gin.Context) string {
	return c.ClientIP()
}

// GetKeyRouteWithIP Limitor 的 Key，路由+IP，针对单个路由做限流
func GetKeyRouteWithIP(c *gin.Context) string {
	return routeToKeyString(c.FullPath()) + c.ClientIP()
}

// Store 限流计数存储，Redis 已连接时共用 redis.Redis，否则使用进程内存
func Store() limiterlib.Store {
	storeOnce.Do(func() {
		prefix := config.GetString("app.name", "luvo") + ":limiter"
		if redis.Redis != nil {
			s, err := sredis.NewStoreWithOptions(redis.Redis.Client, limiterlib.StoreOptions{
				// 为 limiter 设置前缀，保持 redis 里数据的整洁
				Prefix: prefix,
			})
			if err == nil {
				store = s
				return
			}
			logger.LogIf(err)
		}
		store = smemory.NewStoreWithOptions(limiterlib.StoreOptions{
			Prefix:          prefix,
			CleanUpInterval: limiterlib.DefaultCleanUpInterval,
		})
	})
	return store
}

// CheckRate 检测请求是否超额
func CheckRate(c *gin.Context, key string, formatted string) (limiterlib.Context, error) {

	// 实例化依赖的 limiter 包的 limiter.Rate 对象
	var context limiterlib.Context
	rate, err := ParseLimit(formatted)
	if err != nil {
		logger.LogIf(err)
		return context, err
	}

	// 使用上面的初始化的 limiter.Rate 对象和存储对象
	limiterObj := limiterlib.New(Store(), rate)

	// 获取限流的结果
	if c.GetBool("limiter-once") {
		// Peek() 取结果，不增加访问次数
		return limiterObj.Peek(c, key)
	}

	// 确保多个路由组里调用 LimitIP 进行限流时，只增加一次访问次数。
	c.Set("limiter-once", true)

	// Get() 取结果且增加访问次数
	return limiterObj.Get(c, key)
}

// routeToKeyString 辅助方法，将 URL 中的 / 格式为 -
func routeToKeyString(routeName string) string {
	routeName = strings.ReplaceAll(routeName, "/", "-")
	routeName = strings.ReplaceAll(routeName, ":", "_")
	return routeName
}
