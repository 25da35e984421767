// Package application 订单应用服务
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novamart/storefront/internal/order/domain"
	"github.com/novamart/storefront/pkg/logger"
)

// OrderApplicationService 订单应用服务
type OrderApplicationService struct {
	orders    domain.OrderRepository
	customers domain.CustomerDirectory
	publisher domain.EventPublisher
}

// NewOrderApplicationService 创建订单应用服务
func NewOrderApplicationService(
	orders domain.OrderRepository,
	customers domain.CustomerDirectory,
	publisher domain.EventPublisher,
) *OrderApplicationService {
	return &OrderApplicationService{
		orders:    orders,
		customers: customers,
		publisher: publisher,
	}
}

// GetOrder 按订单号查询
func (s *OrderApplicationService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// ListOrders 列出全部订单
func (s *OrderApplicationService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

// ListUserOrders 列出指定用户的订单
func (s *OrderApplicationService) ListUserOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Record 为结算完成的购物车落一笔订单，返回订单号。
// 客户信息查不到时以占位名落账，不阻塞结算。
func (s *OrderApplicationService) Record(ctx context.Context, userID, productName string, amount decimal.Decimal) (string, error) {
	name, email, err := s.customers.Lookup(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "Customer lookup failed, recording order with placeholder", "user_id", userID, "error", err)
		name = "Guest Customer"
		email = ""
	}

	order := &domain.Order{
		ID:            fmt.Sprintf("ORD-%s", uuid.NewString()[:8]),
		UserID:        userID,
		CustomerName:  name,
		CustomerEmail: email,
		ProductName:   productName,
		Amount:        amount,
		Status:        domain.StatusProcessing,
		Date:          time.Now().Format("2006-01-02"),
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return "", err
	}

	if err := s.publisher.Publish(ctx, "order.recorded", order.ID, domain.OrderRecordedEvent{
		OrderID: order.ID,
		UserID:  userID,
		Amount:  amount.StringFixed(2),
	}); err != nil {
		logger.Error(ctx, "Failed to publish order event", "order_id", order.ID, "error", err)
	}

	return order.ID, nil
}
