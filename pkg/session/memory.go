package session

import (
	"context"
	"sync"

	"luvo/app/models/reading"
)

// MemoryStore 进程内存储，没有过期和容量限制，进程退出即丢失
type MemoryStore struct {
	mu       sync.RWMutex
	readings map[string]*reading.Reading
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{readings: make(map[string]*reading.Reading)}
}

// Put 写入会话，同 ID 覆盖
func (s *MemoryStore) Put(_ context.Context, r *reading.Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readings[r.SessionID] = r
	return nil
}

// Get 读取会话
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*reading.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.readings[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Len 当前会话数量
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}
