// Package session 解读会话存储
package session

import (
	"context"
	"errors"

	"luvo/app/models/reading"
)

// ErrNotFound 会话不存在
var ErrNotFound = errors.New("reading session not found")

// Store 会话存储，写入后只读，实现必须并发安全
type Store interface {
	Put(ctx context.Context, r *reading.Reading) error
	Get(ctx context.Context, sessionID string) (*reading.Reading, error)
}

// Pinger 可选实现，健康检查时调用
type Pinger interface {
	Ping(ctx context.Context) error
}
