package tarot

import (
	"errors"

	"github.com/gin-gonic/gin"

	"luvo/app/requests"
	"luvo/app/services"
	"luvo/pkg/deck"
	"luvo/pkg/response"
	"luvo/pkg/session"
)

// ReadingController 解读相关接口
type ReadingController struct {
	service *services.TarotService
}

// NewReadingController 创建控制器
func NewReadingController(service *services.TarotService) *ReadingController {
	return &ReadingController{
		service: service,
	}
}

// Store POST /api/reading 抽牌并生成解读
func (rc *ReadingController) Store(c *gin.Context) {
	// 1. 请求验证
	request, err := requests.ValidateReading(c)
	if err != nil {
		abortRequestError(c, err)
		return
	}

	// 2. 抽牌、解读、保存
	r, err := rc.service.CreateReading(c.Request.Context(), services.ReadingInput{
		Question:   request.Question,
		SpreadType: request.SpreadType,
		Language:   request.Language,
		UserID:     request.UserID,
		Username:   request.Username,
	})
	if err != nil {
		if errors.Is(err, deck.ErrUnknownSpread) {
			response.ValidationError(c, map[string][]string{"spread_type": {err.Error()}})
			return
		}
		response.ServerError(c, err, "Failed to save reading")
		return
	}

	response.JSON(c, r)
}

// Show GET /api/reading/:session_id
func (rc *ReadingController) Show(c *gin.Context) {
	r, err := rc.service.GetReading(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.Abort404(c, "Reading session not found")
			return
		}
		response.ServerError(c, err, "Failed to load reading")
		return
	}

	response.JSON(c, r)
}

// Interpret POST /api/interpret 解读客户端给出的牌
func (rc *ReadingController) Interpret(c *gin.Context) {
	request, err := requests.ValidateInterpretation(c)
	if err != nil {
		abortRequestError(c, err)
		return
	}

	text := rc.service.Interpret(c.Request.Context(), request.Question, request.Cards, request.SpreadType)
	response.JSON(c, gin.H{
		"interpretation": text,
	})
}

// Daily GET /api/daily
func (rc *ReadingController) Daily(c *gin.Context) {
	response.JSON(c, rc.service.Daily())
}

// abortRequestError 验证失败 422，请求体无法解析 400
func abortRequestError(c *gin.Context, err error) {
	var verr requests.ValidationError
	if errors.As(err, &verr) {
		response.ValidationError(c, verr.Errors)
		return
	}
	response.BadRequest(c, err)
}
