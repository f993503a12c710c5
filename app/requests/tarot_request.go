package requests

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"

	"luvo/app/models/card"
	"luvo/app/models/spread"
)

// DefaultLanguage 未指定语言时使用
const DefaultLanguage = "ru"

// ReadingRequest POST /api/reading
type ReadingRequest struct {
	Question   string `json:"question"`
	SpreadType string `json:"spread_type"`
	Language   string `json:"language"`
	UserID     *int64 `json:"user_id"`  // Telegram 用户 ID
	Username   string `json:"username"` // Telegram 用户名
}

// InterpretationRequest POST /api/interpret
type InterpretationRequest struct {
	Question   string           `json:"question"`
	Cards      []card.DrawnCard `json:"cards"`
	SpreadType string           `json:"spread_type"`
}

func spreadRule() string {
	return "in:" + strings.Join(spread.IDs(), ",")
}

func spreadMessage() string {
	return "in:spread_type must be one of " + strings.Join(spread.IDs(), ", ")
}

// ValidateReading 验证创建解读的请求
func ValidateReading(c *gin.Context) (*ReadingRequest, error) {
	rules := govalidator.MapData{
		"question":    []string{"max_cn:2000"},
		"spread_type": []string{"required", spreadRule()},
		"language":    []string{"max_cn:8"},
		"username":    []string{"max_cn:64"},
	}
	messages := govalidator.MapData{
		"question": []string{
			"max_cn:question must not exceed 2000 characters",
		},
		"spread_type": []string{
			"required:spread_type is required",
			spreadMessage(),
		},
		"language": []string{
			"max_cn:language must not exceed 8 characters",
		},
		"username": []string{
			"max_cn:username must not exceed 64 characters",
		},
	}

	req, err := ValidateRequest[ReadingRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}
	if req.Language == "" {
		req.Language = DefaultLanguage
	}
	return req, nil
}

// ValidateInterpretation 验证解读已有牌面的请求
func ValidateInterpretation(c *gin.Context) (*InterpretationRequest, error) {
	rules := govalidator.MapData{
		"question":    []string{"max_cn:2000"},
		"spread_type": []string{"required", spreadRule()},
	}
	messages := govalidator.MapData{
		"question": []string{
			"max_cn:question must not exceed 2000 characters",
		},
		"spread_type": []string{
			"required:spread_type is required",
			spreadMessage(),
		},
	}

	req, err := ValidateRequest[InterpretationRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}
	if req.Cards == nil {
		req.Cards = []card.DrawnCard{}
	}
	return req, nil
}
