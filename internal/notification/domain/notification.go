// Package domain 面向用户的提示消息领域模型
package domain

import (
	"context"
	"time"
)

// Tone 提示消息的语气
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
)

// Toast 一条面向用户的提示消息
type Toast struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Tone      Tone      `json:"tone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Sender 提示消息投递接口，投递失败不影响触发它的业务操作
type Sender interface {
	Send(ctx context.Context, toast *Toast) error
}

// ToastRepository 提示消息仓储接口，保留每个用户最近的消息
type ToastRepository interface {
	Append(ctx context.Context, toast *Toast) error
	Recent(ctx context.Context, userID string, limit int) ([]*Toast, error)
}
