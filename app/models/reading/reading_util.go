package reading

import (
	"crypto/md5"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"luvo/app/models/card"
)

// AnonymousUser 未携带用户 ID 时参与会话 ID 计算的占位值
const AnonymousUser = "anonymous"

// Cards 自定义类型用于处理抽到的牌的 JSON 序列化
type Cards []card.DrawnCard

// Value 实现 driver.Valuer 接口
func (c Cards) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (c *Cards) Scan(value interface{}) error {
	if value == nil {
		*c = Cards{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return errors.New("invalid type for cards")
	}
}

// NewSessionID 由用户标识、问题和纳秒时间戳计算会话 ID（32 位十六进制）
//
// 用户 ID 为空或为 0 时按匿名用户计算
func NewSessionID(userID *int64, question string, now time.Time) string {
	user := AnonymousUser
	if userID != nil && *userID != 0 {
		user = strconv.FormatInt(*userID, 10)
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s_%s", user, question, now.Format(time.RFC3339Nano))))
	return hex.EncodeToString(sum[:])
}

// Validate 验证记录
func (r *Reading) Validate() error {
	if r.SessionID == "" {
		return errors.New("session_id is required")
	}
	if r.SpreadType == "" {
		return errors.New("spread_type is required")
	}
	if r.Interpretation == "" {
		return errors.New("interpretation cannot be empty")
	}
	return nil
}
