// Package memory 结算状态的内存仓储实现
package memory

import (
	"context"
	"sync"

	"github.com/novamart/storefront/internal/checkout/domain"
)

type checkoutRepository struct {
	mu     sync.Mutex
	states map[string]*domain.Checkout
}

// NewCheckoutRepository 创建内存结算状态仓储
func NewCheckoutRepository() domain.CheckoutRepository {
	return &checkoutRepository{states: make(map[string]*domain.Checkout)}
}

func (r *checkoutRepository) GetByUserID(ctx context.Context, userID string) (*domain.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(userID), nil
}

func (r *checkoutRepository) Update(ctx context.Context, userID string, fn func(*domain.Checkout) error) (*domain.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.states[userID]
	if !ok {
		c = domain.NewCheckout(userID)
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	r.states[userID] = c
	return r.snapshot(userID), nil
}

func (r *checkoutRepository) snapshot(userID string) *domain.Checkout {
	c, ok := r.states[userID]
	if !ok {
		return domain.NewCheckout(userID)
	}
	copied := *c
	return &copied
}
