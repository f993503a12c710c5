// Package services 业务服务层
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"luvo/app/models/card"
	"luvo/pkg/llm"
	"luvo/pkg/logger"
	"luvo/pkg/metrics"
)

// SystemPrompt 发给 AI 的系统消息
const SystemPrompt = "Ты опытный таролог с глубоким пониманием символизма карт Таро. Твои толкования точные, глубокие и понятные. Отвечай ТОЛЬКО на русском языке."

// DefaultTimeout AI 调用的默认超时
const DefaultTimeout = 60 * time.Second

// 解读失败时返回给用户的文本
const (
	FallbackEmpty        = "⚠️ Не удалось получить ответ от AI. Попробуйте снова."
	FallbackConnectivity = "⚠️ Ошибка подключения к AI сервису. Возможно, нужен прокси. Попробуйте снова или обратитесь к администратору."
	fallbackErrorPrefix  = "⚠️ Произошла ошибка при обращении к AI: "
)

const promptHeader = `Выступи в роли опытного таролога.
Дай глубокое, но понятное толкование расклада таро, синтезируя значения карт в единый рассказ.
Не используй вступлений или заключений, предоставь только само толкование.
Структурируй ответ: начни с общего вывода, затем кратко раскрой значение каждой карты в ее позиции, и закончи синтезированным советом.
Отвечай ТОЛЬКО на русском языке.`

// Interpreter 把抽到的牌交给 AI 生成解读，结果总是非空文本
type Interpreter struct {
	completer llm.Completer
	timeout   time.Duration
	metrics   *metrics.Collector
}

// NewInterpreter 创建解读服务，completer 为 nil 时所有请求都走降级文本
func NewInterpreter(completer llm.Completer, timeout time.Duration, collector *metrics.Collector) *Interpreter {
	if completer == nil {
		completer = llm.Unconfigured{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Interpreter{
		completer: completer,
		timeout:   timeout,
		metrics:   collector,
	}
}

// Interpret 生成解读文本，AI 出错时返回降级文本而不是错误
func (i *Interpreter) Interpret(ctx context.Context, question string, cards []card.DrawnCard, spreadType string) string {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	start := time.Now()
	answer, err := i.completer.Complete(ctx, BuildPrompt(question, cards, spreadType))
	elapsed := time.Since(start)

	if err != nil {
		outcome := metrics.OutcomeError
		text := fallbackErrorPrefix + err.Error()
		if llm.IsConnectivity(err) || errors.Is(err, llm.ErrNotConfigured) {
			outcome = metrics.OutcomeUnavailable
			text = FallbackConnectivity
		}
		logger.Warn("interpretation failed",
			zap.String("spread_type", spreadType),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		i.record(outcome, elapsed)
		return text
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		i.record(metrics.OutcomeEmpty, elapsed)
		return FallbackEmpty
	}

	i.record(metrics.OutcomeOK, elapsed)
	return answer
}

func (i *Interpreter) record(outcome string, elapsed time.Duration) {
	if i.metrics != nil {
		i.metrics.RecordInterpretation(outcome, elapsed)
	}
}

// BuildPrompt 渲染发给 AI 的用户消息
func BuildPrompt(question string, cards []card.DrawnCard, spreadType string) string {
	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		reversed := ""
		if c.Reversed {
			reversed = " (перевернутая)"
		}
		lines = append(lines, fmt.Sprintf("- Позиция '%s': %s%s. Ключевое значение: %s.",
			positionText(c), c.NameRu, reversed, c.Meaning))
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Вопрос пользователя: \"%s\"\n", question)
	fmt.Fprintf(&b, "Тип расклада: \"%s\"\n", spreadType)
	b.WriteString("Выпавшие карты:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nТвое толкование:")
	return b.String()
}

// 没有位置的牌按 None 渲染
func positionText(c card.DrawnCard) string {
	if c.Position == nil {
		return "None"
	}
	return *c.Position
}
