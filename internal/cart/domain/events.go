package domain

import (
	"context"
	"time"
)

// CartItemAddedEvent 购物车添加商品事件
type CartItemAddedEvent struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemRemovedEvent 购物车移除商品事件
type CartItemRemovedEvent struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartQuantityChangedEvent 购物车数量调整事件
type CartQuantityChangedEvent struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// CartClearedEvent 购物车清空事件
type CartClearedEvent struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// WishlistToggledEvent 心愿单切换事件
type WishlistToggledEvent struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Added     bool      `json:"added"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 事件发布者接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
