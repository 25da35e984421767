// Package sender 提示消息的投递实现
package sender

import (
	"context"

	"github.com/novamart/storefront/internal/notification/domain"
	"github.com/novamart/storefront/pkg/logger"
)

// LogSender 把提示消息写入结构化日志，用于本地与测试环境
type LogSender struct{}

// NewLogSender 创建日志投递器
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send 记录一条提示消息
func (s *LogSender) Send(ctx context.Context, toast *domain.Toast) error {
	logger.Info(ctx, "Toast delivered",
		"user_id", toast.UserID,
		"tone", string(toast.Tone),
		"message", toast.Message,
	)
	return nil
}
