// Package live 实时抽牌协议：洗牌、逐张抽牌、解读
//
// 每条连接是一个顺序处理的状态机，一条消息处理完才读下一条。
// 单条消息出错只回复 error 状态，连接保持；只有读写失败或 ctx 结束才退出。
package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"luvo/app/models/card"
	"luvo/app/models/spread"
	"luvo/pkg/deck"
	"luvo/pkg/logger"
	"luvo/pkg/metrics"
)

// 客户端动作
const (
	ActionShuffle   = "shuffle"
	ActionDraw      = "draw"
	ActionInterpret = "interpret"
)

// 服务端状态
const (
	StatusShuffling      = "shuffling"
	StatusReady          = "ready"
	StatusCardDrawn      = "card_drawn"
	StatusComplete       = "complete"
	StatusInterpretation = "interpretation"
	StatusError          = "error"
)

// ShuffleSteps 洗牌进度消息条数，每条进度 +20
const ShuffleSteps = 5

// Conn 连接需要的最小能力，*websocket.Conn 满足该接口
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
}

// Reader 抽牌与解读能力
type Reader interface {
	Draw(spreadType string) ([]card.DrawnCard, error)
	Interpret(ctx context.Context, question string, cards []card.DrawnCard, spreadType string) string
}

// Config 节奏配置
type Config struct {
	ShuffleDelay time.Duration
	DrawDelay    time.Duration
}

// DefaultConfig 默认节奏
func DefaultConfig() Config {
	return Config{
		ShuffleDelay: 300 * time.Millisecond,
		DrawDelay:    500 * time.Millisecond,
	}
}

// Request 客户端消息
type Request struct {
	Action     string           `json:"action"`
	SpreadType string           `json:"spread_type"`
	Question   string           `json:"question"`
	Cards      []card.DrawnCard `json:"cards"`
}

// Reply 服务端消息
type Reply map[string]interface{}

// errProtocol 单条消息的处理错误，回复后继续
type errProtocol struct {
	msg string
}

func (e *errProtocol) Error() string {
	return e.msg
}

func protocolErrorf(format string, args ...interface{}) error {
	return &errProtocol{msg: fmt.Sprintf(format, args...)}
}

// Session 一条实时连接
type Session struct {
	id      string
	conn    Conn
	reader  Reader
	config  Config
	metrics *metrics.Collector
	logger  *zap.Logger
}

// NewSession 创建会话，每条连接分配一个 uuid 用于日志关联
func NewSession(conn Conn, reader Reader, config Config, collector *metrics.Collector) *Session {
	id := uuid.New().String()
	return &Session{
		id:      id,
		conn:    conn,
		reader:  reader,
		config:  config,
		metrics: collector,
		logger:  logger.Logger.With(zap.String("connection_id", id)),
	}
}

// ID 连接 ID
func (s *Session) ID() string {
	return s.id
}

// Run 循环处理消息直到连接断开或 ctx 结束，返回导致退出的错误
func (s *Session) Run(ctx context.Context) error {
	if s.metrics != nil {
		s.metrics.LiveConnections.Inc()
		defer s.metrics.LiveConnections.Dec()
	}
	s.logger.Info("live session started")
	defer s.logger.Info("live session closed")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		if err := s.handle(ctx, payload); err != nil {
			var perr *errProtocol
			if !errors.As(err, &perr) {
				return err
			}
			s.logger.Debug("rejected live message", zap.String("reason", perr.msg))
			if err := s.send(Reply{"status": StatusError, "message": perr.msg}); err != nil {
				return err
			}
		}
	}
}

func (s *Session) handle(ctx context.Context, payload []byte) error {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		s.count("invalid")
		return protocolErrorf("invalid message: %v", err)
	}

	switch req.Action {
	case ActionShuffle:
		s.count(req.Action)
		return s.shuffle(ctx)
	case ActionDraw:
		s.count(req.Action)
		return s.draw(ctx, defaultSpread(req.SpreadType))
	case ActionInterpret:
		s.count(req.Action)
		return s.interpret(ctx, req)
	default:
		s.count("unknown")
		return protocolErrorf("unknown action: %q", req.Action)
	}
}

func (s *Session) shuffle(ctx context.Context) error {
	for i := 1; i <= ShuffleSteps; i++ {
		if err := s.send(Reply{"status": StatusShuffling, "progress": i * 20}); err != nil {
			return err
		}
		if err := sleep(ctx, s.config.ShuffleDelay); err != nil {
			return err
		}
	}
	return s.send(Reply{"status": StatusReady})
}

func (s *Session) draw(ctx context.Context, spreadType string) error {
	cards, err := s.reader.Draw(spreadType)
	if err != nil {
		if errors.Is(err, deck.ErrUnknownSpread) {
			return protocolErrorf("unknown spread type: %q", spreadType)
		}
		return protocolErrorf("draw failed: %v", err)
	}

	for i, c := range cards {
		if err := sleep(ctx, s.config.DrawDelay); err != nil {
			return err
		}
		if err := s.send(Reply{"status": StatusCardDrawn, "index": i, "card": c}); err != nil {
			return err
		}
	}
	return s.send(Reply{"status": StatusComplete, "cards": cards})
}

func (s *Session) interpret(ctx context.Context, req Request) error {
	spreadType := defaultSpread(req.SpreadType)
	if !spread.Exists(spreadType) {
		return protocolErrorf("unknown spread type: %q", spreadType)
	}
	cards := req.Cards
	if cards == nil {
		cards = []card.DrawnCard{}
	}

	text := s.reader.Interpret(ctx, req.Question, cards, spreadType)
	return s.send(Reply{"status": StatusInterpretation, "text": text})
}

func (s *Session) send(reply Reply) error {
	if err := s.conn.WriteJSON(reply); err != nil {
		return fmt.Errorf("write %v: %w", reply["status"], err)
	}
	return nil
}

func (s *Session) count(action string) {
	if s.metrics != nil {
		s.metrics.LiveMessages.WithLabelValues(action).Inc()
	}
}

func defaultSpread(spreadType string) string {
	if spreadType == "" {
		return spread.Single
	}
	return spreadType
}

// sleep 等待 d，ctx 结束时提前返回
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
