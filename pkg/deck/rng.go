package deck

import (
	"math/rand/v2"
	"sync"
)

// RNG 抽牌用的随机源，测试时可以注入确定序列
type RNG interface {
	// IntN 返回 [0, n) 的随机整数
	IntN(n int) int
	// Float64 返回 [0.0, 1.0) 的随机浮点数
	Float64() float64
}

// lockedRNG 并发安全的随机源，所有请求共用一个实例
type lockedRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRNG 创建随机播种的并发安全随机源
func NewRNG() RNG {
	return NewSeededRNG(rand.Uint64(), rand.Uint64())
}

// NewSeededRNG 创建固定种子的并发安全随机源
func NewSeededRNG(seed1, seed2 uint64) RNG {
	return &lockedRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (l *lockedRNG) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
