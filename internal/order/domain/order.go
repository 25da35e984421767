// Package domain 订单的领域模型
package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrOrderNotFound 订单不存在
var ErrOrderNotFound = errors.New("order not found")

// Status 订单状态
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// Order 订单实体。单页结算只记录聚合后的商品名与总额。
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	ProductName   string          `json:"product_name"`
	Amount        decimal.Decimal `json:"amount"`
	Status        Status          `json:"status"`
	Date          string          `json:"date"`
}

// OrderRepository 订单仓储接口
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
}
