package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderDigest 订单摘要，供看板聚合
type OrderDigest struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// ProductDigest 低库存商品摘要
type ProductDigest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// OrderFeed 订单数据源，由订单域适配实现
type OrderFeed interface {
	Orders(ctx context.Context) ([]OrderDigest, error)
}

// UserDigest 用户摘要，供后台用户列表展示
type UserDigest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	JoinDate   string `json:"join_date"`
	Status     string `json:"status"`
	Department string `json:"department,omitempty"`
}

// UserFeed 用户数据源，由用户域适配实现
type UserFeed interface {
	Users(ctx context.Context) ([]UserDigest, error)
}

// InventoryFeed 库存数据源，由商品目录域适配实现
type InventoryFeed interface {
	LowStockProducts(ctx context.Context) ([]ProductDigest, error)
}
