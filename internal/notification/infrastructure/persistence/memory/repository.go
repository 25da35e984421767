// Package memory 提示消息的内存仓储
package memory

import (
	"context"
	"sync"

	"github.com/novamart/storefront/internal/notification/domain"
)

const maxPerUser = 50

type toastRepository struct {
	mu     sync.RWMutex
	toasts map[string][]*domain.Toast
}

// NewToastRepository 创建内存提示消息仓储
func NewToastRepository() domain.ToastRepository {
	return &toastRepository{toasts: make(map[string][]*domain.Toast)}
}

func (r *toastRepository) Append(ctx context.Context, toast *domain.Toast) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *toast
	list := append(r.toasts[toast.UserID], &clone)
	if len(list) > maxPerUser {
		list = list[len(list)-maxPerUser:]
	}
	r.toasts[toast.UserID] = list
	return nil
}

func (r *toastRepository) Recent(ctx context.Context, userID string, limit int) ([]*domain.Toast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.toasts[userID]
	if limit > 0 && len(list) > limit {
		list = list[len(list)-limit:]
	}
	// 新消息在前
	out := make([]*domain.Toast, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		clone := *list[i]
		out = append(out, &clone)
	}
	return out, nil
}
