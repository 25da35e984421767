package domain

import "context"

// OrderRecordedEvent 订单落账事件
type OrderRecordedEvent struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Amount  string `json:"amount"`
}

// EventPublisher 订单领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}

// CustomerDirectory 客户信息查询接口，由用户域适配实现
type CustomerDirectory interface {
	Lookup(ctx context.Context, userID string) (name, email string, err error)
}
