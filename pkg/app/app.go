// Package app 提供应用程序相关的辅助函数
package app

import (
	"time"

	"luvo/pkg/config"
)

// IsLocal 判断当前是否运行在本地环境
func IsLocal() bool {
	return config.Get("app.env") == "local"
}

// IsTesting 判断当前是否运行在测试环境
func IsTesting() bool {
	return config.Get("app.env") == "testing"
}

// TimenowInTimezone 获取当前时间（支持时区设置）
// 从配置文件读取 app.timezone 配置项来确定时区，时区无效时退回 UTC
//
//	currentTime := TimenowInTimezone()
func TimenowInTimezone() time.Time {
	location, err := time.LoadLocation(config.GetString("app.timezone", "UTC"))
	if err != nil {
		location = time.UTC
	}
	return time.Now().In(location)
}

// TodayUTC 返回 UTC 日历日期，格式 YYYY-MM-DD
func TodayUTC() string {
	return time.Now().UTC().Format(time.DateOnly)
}
