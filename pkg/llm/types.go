package llm

import "time"

// Config AI 服务配置
type Config struct {
	URLs         []string      // OpenAI 兼容接口地址，多个地址按负载选择
	APIKeys      []string      // 与 URLs 一一对应，数量不足时复用最后一个
	Model        string        // 模型名称
	SystemPrompt string        // 系统提示词
	Timeout      time.Duration // 单次请求超时
	ProxyURL     string        // 出站代理，可选
	RateLimit    float64       // 每秒最多请求数，0 表示不限制
	RateBurst    int
}

// ChatMessage 对话消息
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest /chat/completions 请求结构
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse /chat/completions 响应结构
type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Answer 取第一条回答
func (r *ChatResponse) Answer() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}
