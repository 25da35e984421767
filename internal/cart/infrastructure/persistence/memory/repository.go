// Package memory 购物车与心愿单的内存仓储实现
package memory

import (
	"context"
	"sync"

	"github.com/novamart/storefront/internal/cart/domain"
)

type cartRepository struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

// NewCartRepository 创建内存购物车仓储
func NewCartRepository() domain.CartRepository {
	return &cartRepository{carts: make(map[string]*domain.Cart)}
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(userID), nil
}

// Update 在锁内执行读改写，保证回调看到的是最新快照
func (r *cartRepository) Update(ctx context.Context, userID string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		cart = &domain.Cart{UserID: userID}
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	r.carts[userID] = cart
	return r.snapshot(userID), nil
}

func (r *cartRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

// snapshot 返回脱离仓储内部状态的副本，调用方持有锁
func (r *cartRepository) snapshot(userID string) *domain.Cart {
	cart, ok := r.carts[userID]
	if !ok {
		return &domain.Cart{UserID: userID}
	}
	copied := &domain.Cart{UserID: cart.UserID, Items: make([]domain.CartItem, len(cart.Items))}
	copy(copied.Items, cart.Items)
	return copied
}

type wishlistRepository struct {
	mu        sync.Mutex
	wishlists map[string]*domain.Wishlist
}

// NewWishlistRepository 创建内存心愿单仓储
func NewWishlistRepository() domain.WishlistRepository {
	return &wishlistRepository{wishlists: make(map[string]*domain.Wishlist)}
}

func (r *wishlistRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(userID), nil
}

func (r *wishlistRepository) Update(ctx context.Context, userID string, fn func(*domain.Wishlist) error) (*domain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wishlists[userID]
	if !ok {
		w = &domain.Wishlist{UserID: userID}
	}
	if err := fn(w); err != nil {
		return nil, err
	}
	r.wishlists[userID] = w
	return r.snapshot(userID), nil
}

func (r *wishlistRepository) snapshot(userID string) *domain.Wishlist {
	w, ok := r.wishlists[userID]
	if !ok {
		return &domain.Wishlist{UserID: userID}
	}
	copied := &domain.Wishlist{UserID: w.UserID, Items: make([]domain.ProductInfo, len(w.Items))}
	copy(copied.Items, w.Items)
	return copied
}
