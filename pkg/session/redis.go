package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"luvo/app/models/reading"
	"luvo/pkg/redis"
)

// RedisStore 会话以 JSON 形式存入 Redis，多实例部署时共享
type RedisStore struct {
	client *redis.RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore 创建 Redis 存储，ttl 为 0 表示不过期
func NewRedisStore(client *redis.RedisClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("%s:reading:%s", s.prefix, sessionID)
}

// Put 写入会话
func (s *RedisStore) Put(ctx context.Context, r *reading.Reading) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}
	if err := s.client.Set(ctx, s.key(r.SessionID), data, s.ttl); err != nil {
		return fmt.Errorf("failed to save reading: %w", err)
	}
	return nil
}

// Get 读取会话
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*reading.Reading, error) {
	data, err := s.client.Get(ctx, s.key(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reading: %w", err)
	}

	var r reading.Reading
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reading: %w", err)
	}
	return &r, nil
}

// Ping 检查 Redis 连接
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping()
}
