// Package llm OpenAI 兼容的对话补全客户端
//
// 支持多实例按负载选择、故障计数和熔断。每次调用只请求一次，不做重试。
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"luvo/pkg/logger"
)

// Completer 根据提示词生成文本
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Unconfigured 未配置 AI 接口时使用，所有调用都失败
type Unconfigured struct{}

// Complete 实现 Completer
func (Unconfigured) Complete(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

// Client 对话补全客户端
type Client struct {
	instances    []*Instance
	model        string
	systemPrompt string
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker
	mu           sync.RWMutex
}

// Instance AI 接口实例
type Instance struct {
	URL          string
	APIKey       string
	Health       bool
	Client       *resty.Client
	LastErr      error
	LastUsed     time.Time
	ErrorCount   int
	RequestCount *RequestCounter
}

// RequestCounter 请求计数器
type RequestCounter struct {
	requests []time.Time
	mu       sync.Mutex
}

// NewRequestCounter 创建新的请求计数器
func NewRequestCounter() *RequestCounter {
	return &RequestCounter{
		requests: make([]time.Time, 0, 1000),
	}
}

// AddRequest 记录新请求
func (rc *RequestCounter) AddRequest() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	now := time.Now()
	// 清理超过1小时的旧记录
	keep := 0
	for keep < len(rc.requests) && now.Sub(rc.requests[keep]) > time.Hour {
		keep++
	}
	rc.requests = append(rc.requests[keep:], now)
}

// GetRecentCount 获取最近时间段内的请求数
func (rc *RequestCounter) GetRecentCount(duration time.Duration) int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	now := time.Now()
	count := 0
	for i := len(rc.requests) - 1; i >= 0; i-- {
		if now.Sub(rc.requests[i]) > duration {
			break
		}
		count++
	}
	return count
}

// NewClient 创建客户端，没有可用实例时返回 ErrNotConfigured
func NewClient(config Config) (*Client, error) {
	if len(config.URLs) == 0 || len(config.APIKeys) == 0 {
		return nil, ErrNotConfigured
	}

	client := &Client{
		instances:    make([]*Instance, 0, len(config.URLs)),
		model:        config.Model,
		systemPrompt: config.SystemPrompt,
		limiter:      rate.NewLimiter(rate.Inf, 0),
	}
	if config.RateLimit > 0 {
		burst := config.RateBurst
		if burst <= 0 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}

	for i, url := range config.URLs {
		apiKey := config.APIKeys[len(config.APIKeys)-1]
		if i < len(config.APIKeys) {
			apiKey = config.APIKeys[i]
		}
		if instance := NewInstance(url, apiKey, config.Timeout, config.ProxyURL); instance != nil {
			client.instances = append(client.instances, instance)
		}
	}
	if len(client.instances) == 0 {
		return nil, ErrNotConfigured
	}

	client.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WarnString("LLM", "Breaker", fmt.Sprintf("熔断器 %s 状态变更 %s -> %s", name, from, to))
		},
	})

	return client, nil
}

// NewInstance 创建新的接口实例，resty 不做重试
func NewInstance(url, apiKey string, timeout time.Duration, proxyURL string) *Instance {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	apiKey = strings.TrimSpace(apiKey)
	if url == "" {
		return nil
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}

	return &Instance{
		URL:          url,
		APIKey:       apiKey,
		Health:       true,
		Client:       client,
		LastUsed:     time.Now(),
		RequestCount: NewRequestCounter(),
	}
}

// Complete 发送一次对话补全请求，返回去除首尾空白的回答
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	instance, err := c.getAvailableInstance()
	if err != nil {
		return "", err
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.callAPI(ctx, instance, prompt)
	})
	if err != nil {
		c.handleAPIError(instance, err)
		logger.ErrorString("LLM", "Error", fmt.Sprintf(
			"请求失败 实例:%s 错误:%v", shortenURL(instance.URL), err))
		return "", err
	}

	instance.RequestCount.AddRequest()
	c.handleAPISuccess(instance)

	answer := strings.TrimSpace(result.(string))
	logger.InfoString("LLM", "Success", fmt.Sprintf(
		"请求成功 实例:%s 耗时:%v 结果长度:%d",
		shortenURL(instance.URL), time.Since(start), len(answer)))
	return answer, nil
}

// callAPI 调用 /chat/completions
func (c *Client) callAPI(ctx context.Context, instance *Instance, prompt string) (string, error) {
	messages := make([]ChatMessage, 0, 2)
	if c.systemPrompt != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: c.systemPrompt})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: prompt})

	var chatResp ChatResponse
	req := instance.Client.R().
		SetContext(ctx).
		SetBody(ChatRequest{Model: c.model, Messages: messages}).
		SetResult(&chatResp)
	if instance.APIKey != "" {
		req.SetAuthToken(instance.APIKey)
	}

	resp, err := req.Post(instance.URL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to call ai api: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("%w: status %d, body: %s", ErrUpstream, resp.StatusCode(), resp.String())
	}

	return chatResp.Answer(), nil
}

// HealthCheck 检查是否还有健康实例，熔断打开时视为不可用
func (c *Client) HealthCheck(ctx context.Context) error {
	if c.breaker.State() == gobreaker.StateOpen {
		return gobreaker.ErrOpenState
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var lastErr error
	for _, instance := range c.instances {
		if instance.Health {
			return nil
		}
		if instance.LastErr != nil {
			lastErr = instance.LastErr
		}
	}
	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrNoInstance, lastErr)
	}
	return ErrNoInstance
}

// BreakerState 熔断器状态
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// handleAPISuccess 处理 API 调用成功
func (c *Client) handleAPISuccess(instance *Instance) {
	c.mu.Lock()
	defer c.mu.Unlock()

	instance.Health = true
	instance.ErrorCount = 0
	instance.LastUsed = time.Now()
	instance.LastErr = nil
}

// handleAPIError 处理 API 调用错误，熔断拒绝的请求不计入实例错误
func (c *Client) handleAPIError(instance *Instance, err error) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	instance.ErrorCount++
	instance.LastErr = err

	// 连续错误超过阈值才标记为不健康
	if instance.ErrorCount >= 3 {
		instance.Health = false
		logger.WarnString("LLM", "Instance", fmt.Sprintf(
			"实例 %s 被标记为不健康: 连续 %d 次错误, 最后错误: %v",
			shortenURL(instance.URL), instance.ErrorCount, err))
	}
}

// getAvailableInstance 选择最近 5 分钟负载最低的健康实例
func (c *Client) getAvailableInstance() (*Instance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		selected *Instance
		minLoad  int
	)
	for _, instance := range c.instances {
		if !instance.Health {
			continue
		}
		load := instance.RequestCount.GetRecentCount(5 * time.Minute)
		if selected == nil || load < minLoad {
			selected = instance
			minLoad = load
		}
	}

	if selected != nil {
		logger.DebugString("LLM", "Selected", fmt.Sprintf(
			"选择实例 %s [负载:%d]", shortenURL(selected.URL), minLoad))
		return selected, nil
	}

	// 如果没有健康实例，重置所有实例状态
	if len(c.instances) > 0 {
		for _, instance := range c.instances {
			instance.Health = true
			instance.ErrorCount = 0
		}
		logger.InfoString("LLM", "Reset", "已重置所有实例状态")
		return c.instances[0], nil
	}

	return nil, ErrNoInstance
}

// shortenURL 缩短 URL 用日志显示
func shortenURL(url string) string {
	if len(url) > 30 {
		return url[:15] + "..." + url[len(url)-12:]
	}
	return url
}
