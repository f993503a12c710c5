// Package reading 塔罗牌解读记录
package reading

import (
	"time"

	"gorm.io/gorm"
)

// Reading 一次解读会话：抽到的牌 + 解读文本，写入会话存储后不再修改
type Reading struct {
	SessionID      string `gorm:"primaryKey;type:varchar(32)" json:"session_id"`
	Question       string `gorm:"type:text" json:"question"`
	SpreadType     string `gorm:"type:varchar(32);index" json:"spread_type"`
	Cards          Cards  `gorm:"type:json" json:"cards"`
	Interpretation string `gorm:"type:text" json:"interpretation"`
	Timestamp      string `gorm:"type:varchar(64)" json:"timestamp"`

	Language string `gorm:"type:varchar(8)" json:"language,omitempty"`

	// Telegram 用户 ID 和用户名
	UserID   *int64 `gorm:"index" json:"user_id,omitempty"`
	Username string `gorm:"type:varchar(64)" json:"username,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"-"`
}

// TableName 指定表名
func (Reading) TableName() string {
	return "tarot_readings"
}

// BeforeSave GORM 钩子
func (r *Reading) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}
