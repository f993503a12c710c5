package tarot

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"luvo/app/services"
	"luvo/pkg/live"
	"luvo/pkg/logger"
	"luvo/pkg/metrics"
)

const (
	// 单条客户端消息上限
	maxMessageSize = 64 * 1024

	// 写超时
	writeWait = 10 * time.Second
)

// LiveController 实时抽牌 websocket
type LiveController struct {
	service  *services.TarotService
	config   live.Config
	metrics  *metrics.Collector
	upgrader websocket.Upgrader
}

// NewLiveController 创建控制器，只接受白名单来源的浏览器连接
func NewLiveController(service *services.TarotService, config live.Config, collector *metrics.Collector, allowedOrigins []string) *LiveController {
	return &LiveController{
		service: service,
		config:  config,
		metrics: collector,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// 非浏览器客户端不带 Origin
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Connect GET /ws/live-reading
func (lc *LiveController) Connect(c *gin.Context) {
	conn, err := lc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已经写回了错误响应
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	s := live.NewSession(&deadlineConn{Conn: conn}, lc.service, lc.config, lc.metrics)
	if err := s.Run(ctx); !isExpectedClose(err) {
		logger.Warn("live session ended", zap.String("connection_id", s.ID()), zap.Error(err))
	}
}

// isExpectedClose 客户端正常关闭或请求结束
func isExpectedClose(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived:
			return true
		}
	}
	return false
}

// deadlineConn 每次写入前刷新写超时
type deadlineConn struct {
	*websocket.Conn
}

func (d *deadlineConn) WriteJSON(v interface{}) error {
	if err := d.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return d.Conn.WriteJSON(v)
}
