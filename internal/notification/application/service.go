// Package application 提示消息应用服务
package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/novamart/storefront/internal/notification/domain"
	"github.com/novamart/storefront/pkg/logger"
)

const recentLimit = 20

// NotificationApplicationService 提示消息应用服务。
// Success 与 Info 供购物车等域作为回调使用，失败只记日志不回传。
type NotificationApplicationService struct {
	toasts  domain.ToastRepository
	senders []domain.Sender
}

// NewNotificationApplicationService 创建提示消息应用服务
func NewNotificationApplicationService(toasts domain.ToastRepository, senders ...domain.Sender) *NotificationApplicationService {
	return &NotificationApplicationService{toasts: toasts, senders: senders}
}

// Success 发送成功语气的提示
func (s *NotificationApplicationService) Success(ctx context.Context, userID, message string) {
	s.deliver(ctx, userID, domain.ToneSuccess, message)
}

// Info 发送中性语气的提示
func (s *NotificationApplicationService) Info(ctx context.Context, userID, message string) {
	s.deliver(ctx, userID, domain.ToneInfo, message)
}

// Recent 用户最近的提示消息
func (s *NotificationApplicationService) Recent(ctx context.Context, userID string) ([]*domain.Toast, error) {
	return s.toasts.Recent(ctx, userID, recentLimit)
}

func (s *NotificationApplicationService) deliver(ctx context.Context, userID string, tone domain.Tone, message string) {
	toast := &domain.Toast{
		ID:        uuid.NewString(),
		UserID:    userID,
		Tone:      tone,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.toasts.Append(ctx, toast); err != nil {
		logger.Error(ctx, "Failed to store toast", "user_id", userID, "error", err)
	}
	for _, sender := range s.senders {
		if err := sender.Send(ctx, toast); err != nil {
			logger.Error(ctx, "Failed to deliver toast", "user_id", userID, "error", err)
		}
	}
}
