// Package application 购物车与心愿单的应用服务
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/novamart/storefront/internal/cart/domain"
	"github.com/novamart/storefront/pkg/logger"
)

// AddItemCommand 添加商品到购物车命令
type AddItemCommand struct {
	UserID    string
	ProductID string
}

// UpdateQuantityCommand 调整数量命令
type UpdateQuantityCommand struct {
	UserID    string
	ProductID string
	Delta     int
}

// RemoveItemCommand 从购物车移除商品命令
type RemoveItemCommand struct {
	UserID    string
	ProductID string
}

// ToggleWishlistCommand 切换心愿单命令
type ToggleWishlistCommand struct {
	UserID    string
	ProductID string
}

// CartApplicationService 购物车服务门面
type CartApplicationService struct {
	carts     domain.CartRepository
	wishlists domain.WishlistRepository
	products  domain.ProductProvider
	publisher domain.EventPublisher
	notifier  domain.Notifier
}

// NewCartApplicationService 创建购物车服务实例
func NewCartApplicationService(
	carts domain.CartRepository,
	wishlists domain.WishlistRepository,
	products domain.ProductProvider,
	publisher domain.EventPublisher,
	notifier domain.Notifier,
) *CartApplicationService {
	return &CartApplicationService{
		carts:     carts,
		wishlists: wishlists,
		products:  products,
		publisher: publisher,
		notifier:  notifier,
	}
}

// GetCart 获取购物车快照
func (s *CartApplicationService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.carts.GetByUserID(ctx, userID)
}

// GetWishlist 获取心愿单快照
func (s *CartApplicationService) GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, error) {
	return s.wishlists.GetByUserID(ctx, userID)
}

// AddItem 处理添加商品到购物车：同商品合并计数并发出通知
func (s *CartApplicationService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	info, err := s.products.Snapshot(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("resolve product %s: %w", cmd.ProductID, err)
	}

	cart, err := s.carts.Update(ctx, cmd.UserID, func(c *domain.Cart) error {
		c.AddItem(*info)
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := domain.CartItemAddedEvent{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Quantity:  1,
		Timestamp: time.Now(),
	}
	s.publish(ctx, "cart.item.added", cmd.UserID, event)

	s.notifier.Success(ctx, cmd.UserID, fmt.Sprintf("Added %s to cart.", info.Name))
	return cart, nil
}

// UpdateQuantity 处理数量调整，数量下限为 1
func (s *CartApplicationService) UpdateQuantity(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Cart, error) {
	cart, err := s.carts.Update(ctx, cmd.UserID, func(c *domain.Cart) error {
		c.UpdateQuantity(cmd.ProductID, cmd.Delta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := domain.CartQuantityChangedEvent{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Timestamp: time.Now(),
	}
	for _, item := range cart.Items {
		if item.ProductID == cmd.ProductID {
			event.Quantity = item.Quantity
		}
	}
	s.publish(ctx, "cart.quantity.changed", cmd.UserID, event)

	return cart, nil
}

// RemoveItem 处理从购物车移除商品，未知商品为空操作
func (s *CartApplicationService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	cart, err := s.carts.Update(ctx, cmd.UserID, func(c *domain.Cart) error {
		c.RemoveItem(cmd.ProductID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := domain.CartItemRemovedEvent{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Timestamp: time.Now(),
	}
	s.publish(ctx, "cart.item.removed", cmd.UserID, event)

	return cart, nil
}

// ClearCart 清空购物车并发出完成通知，仅由结算流程的终态调用
func (s *CartApplicationService) ClearCart(ctx context.Context, userID string) error {
	if err := s.carts.Delete(ctx, userID); err != nil {
		return err
	}

	event := domain.CartClearedEvent{UserID: userID, Timestamp: time.Now()}
	s.publish(ctx, "cart.cleared", userID, event)

	s.notifier.Success(ctx, userID, "Order confirmed!")
	return nil
}

// ToggleWishlist 切换心愿单收藏状态，按方向发出不同语气的通知
func (s *CartApplicationService) ToggleWishlist(ctx context.Context, cmd ToggleWishlistCommand) (*domain.Wishlist, error) {
	info, err := s.products.Snapshot(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("resolve product %s: %w", cmd.ProductID, err)
	}

	var added bool
	wishlist, err := s.wishlists.Update(ctx, cmd.UserID, func(w *domain.Wishlist) error {
		added = w.Toggle(*info)
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := domain.WishlistToggledEvent{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Added:     added,
		Timestamp: time.Now(),
	}
	s.publish(ctx, "wishlist.toggled", cmd.UserID, event)

	if added {
		s.notifier.Success(ctx, cmd.UserID, "Saved to wishlist.")
	} else {
		s.notifier.Info(ctx, cmd.UserID, "Removed from wishlist.")
	}
	return wishlist, nil
}

func (s *CartApplicationService) publish(ctx context.Context, topic, key string, event any) {
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Warn(ctx, "Failed to publish cart event", "topic", topic, "error", err)
	}
}
