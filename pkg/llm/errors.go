package llm

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/sony/gobreaker"
)

var (
	// ErrNotConfigured 未配置 AI 接口
	ErrNotConfigured = errors.New("ai service is not configured")
	// ErrNoInstance 没有可用实例
	ErrNoInstance = errors.New("no ai instance available")
	// ErrUpstream AI 接口返回了错误状态
	ErrUpstream = errors.New("ai upstream failure")
)

// IsConnectivity 判断是否为超时或连接类错误（包括熔断）
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "connection")
}
