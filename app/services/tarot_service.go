package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"luvo/app/models/card"
	"luvo/app/models/reading"
	"luvo/pkg/app"
	"luvo/pkg/deck"
	"luvo/pkg/logger"
	"luvo/pkg/metrics"
	"luvo/pkg/session"
)

// ReadingInput 创建解读所需的参数
type ReadingInput struct {
	Question   string
	SpreadType string
	Language   string
	UserID     *int64
	Username   string
}

// TarotService 抽牌、解读、保存会话
type TarotService struct {
	drawer      *deck.Drawer
	interpreter *Interpreter
	store       session.Store
	metrics     *metrics.Collector
	now         func() time.Time
}

// NewTarotService 创建服务
func NewTarotService(drawer *deck.Drawer, interpreter *Interpreter, store session.Store, collector *metrics.Collector) *TarotService {
	if drawer == nil {
		drawer = deck.NewDrawer(nil)
	}
	if store == nil {
		store = session.NewMemoryStore()
	}
	return &TarotService{
		drawer:      drawer,
		interpreter: interpreter,
		store:       store,
		metrics:     collector,
		now:         app.TimenowInTimezone,
	}
}

// Store 会话存储
func (s *TarotService) Store() session.Store {
	return s.store
}

// Draw 按牌阵抽牌
func (s *TarotService) Draw(spreadType string) ([]card.DrawnCard, error) {
	cards, err := s.drawer.Draw(spreadType)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordReading(spreadType)
	}
	return cards, nil
}

// CreateReading 抽牌并生成解读，保存后返回
func (s *TarotService) CreateReading(ctx context.Context, in ReadingInput) (*reading.Reading, error) {
	cards, err := s.Draw(in.SpreadType)
	if err != nil {
		return nil, err
	}

	now := s.now()
	r := &reading.Reading{
		SessionID:      reading.NewSessionID(in.UserID, in.Question, now),
		Question:       in.Question,
		SpreadType:     in.SpreadType,
		Cards:          cards,
		Interpretation: s.interpreter.Interpret(ctx, in.Question, cards, in.SpreadType),
		Timestamp:      now.Format(time.RFC3339Nano),
		Language:       in.Language,
		UserID:         in.UserID,
		Username:       in.Username,
	}

	if err := s.store.Put(ctx, r); err != nil {
		return nil, fmt.Errorf("save reading %s: %w", r.SessionID, err)
	}

	logger.Debug("reading created",
		zap.String("session_id", r.SessionID),
		zap.String("spread_type", r.SpreadType),
		zap.Int("cards", len(r.Cards)),
	)
	return r, nil
}

// GetReading 按会话 ID 查找，不存在时返回 session.ErrNotFound
func (s *TarotService) GetReading(ctx context.Context, sessionID string) (*reading.Reading, error) {
	return s.store.Get(ctx, sessionID)
}

// Interpret 解读客户端给出的牌
func (s *TarotService) Interpret(ctx context.Context, question string, cards []card.DrawnCard, spreadType string) string {
	return s.interpreter.Interpret(ctx, question, cards, spreadType)
}

// Daily 当天的每日一牌，日期按 UTC 计算
func (s *TarotService) Daily() deck.DailyCard {
	return deck.Daily(app.TodayUTC())
}
