package repositories

import (
	"context"
	"errors"
	"fmt"

	"luvo/app/models/reading"
	"luvo/pkg/session"

	"gorm.io/gorm"
)

// ReadingRepository 解读会话的数据库存储（SESSION_DRIVER=database）
type ReadingRepository struct {
	db *gorm.DB
}

// NewReadingRepository 创建仓库实例
func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Put 创建解读记录
func (r *ReadingRepository) Put(ctx context.Context, rd *reading.Reading) error {
	if err := r.db.WithContext(ctx).Create(rd).Error; err != nil {
		return fmt.Errorf("failed to create reading: %w", err)
	}
	return nil
}

// Get 按会话 ID 获取解读记录
func (r *ReadingRepository) Get(ctx context.Context, sessionID string) (*reading.Reading, error) {
	var rd reading.Reading

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&rd).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reading: %w", err)
	}

	return &rd, nil
}

// Ping 检查数据库连接
func (r *ReadingRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
