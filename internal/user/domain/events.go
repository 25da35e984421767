package domain

import "context"

// UserRegisteredEvent 用户注册事件
type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// UserLoggedInEvent 用户登录事件
type UserLoggedInEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// EventPublisher 用户领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
