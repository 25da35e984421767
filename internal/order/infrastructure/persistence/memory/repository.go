// Package memory 订单的内存仓储
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/novamart/storefront/internal/order/domain"
)

type orderRepository struct {
	mu     sync.RWMutex
	order  []string
	orders map[string]*domain.Order
}

// NewOrderRepository 创建预置演示订单的内存仓储
func NewOrderRepository() domain.OrderRepository {
	repo := &orderRepository{orders: make(map[string]*domain.Order)}
	for _, o := range fixtureOrders() {
		repo.order = append(repo.order, o.ID)
		repo.orders[o.ID] = o
	}
	return repo
}

func fixtureOrders() []*domain.Order {
	return []*domain.Order{
		{
			ID:            "ORD-001",
			UserID:        "U2",
			CustomerName:  "Sarah Wilson",
			CustomerEmail: "sarah@example.com",
			ProductName:   "Zenith Pro Headphones",
			Amount:        decimal.NewFromInt(299),
			Status:        domain.StatusDelivered,
			Date:          "2024-10-14",
		},
	}
}

func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		r.order = append(r.order, order.ID)
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *orderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Order, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.orders[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Order
	for _, id := range r.order {
		if r.orders[id].UserID == userID {
			clone := *r.orders[id]
			out = append(out, &clone)
		}
	}
	return out, nil
}
