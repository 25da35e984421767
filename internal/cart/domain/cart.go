// Package domain 购物车与心愿单的领域模型
package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductInfo 加入购物车或心愿单时留存的商品快照
type ProductInfo struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Price     decimal.Decimal `json:"price"`
}

// CartItem 购物车行项目，数量恒 >= 1
type CartItem struct {
	ProductInfo
	Quantity int `json:"quantity"`
}

// Cart 购物车聚合，同一商品至多一个行项目
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// AddItem 加入商品：已存在则数量 +1，否则追加数量为 1 的新行项目
func (c *Cart) AddItem(info ProductInfo) {
	for i := range c.Items {
		if c.Items[i].ProductID == info.ProductID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductInfo: info, Quantity: 1})
}

// UpdateQuantity 调整数量，结果不会低于 1；未知商品为空操作
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			qty := c.Items[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			c.Items[i].Quantity = qty
			return
		}
	}
}

// RemoveItem 删除行项目；未知商品为空操作
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.Items = nil
}

// Total 购物车总金额
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ItemCount 购物车商品总件数
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Wishlist 心愿单，按商品 ID 去重的有序集合
type Wishlist struct {
	UserID string        `json:"user_id"`
	Items  []ProductInfo `json:"items"`
}

// Contains 是否已收藏
func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Toggle 切换收藏状态，返回 true 表示本次为加入
func (w *Wishlist) Toggle(info ProductInfo) bool {
	for i := range w.Items {
		if w.Items[i].ProductID == info.ProductID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return false
		}
	}
	w.Items = append(w.Items, info)
	return true
}

// CartRepository 购物车仓储接口。
// Update 对同一用户的读改写是原子的，回调内看到的总是最新快照。
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Cart, error)
	Update(ctx context.Context, userID string, fn func(*Cart) error) (*Cart, error)
	Delete(ctx context.Context, userID string) error
}

// WishlistRepository 心愿单仓储接口
type WishlistRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Wishlist, error)
	Update(ctx context.Context, userID string, fn func(*Wishlist) error) (*Wishlist, error)
}

// ProductProvider 商品快照提供方，由商品目录实现
type ProductProvider interface {
	Snapshot(ctx context.Context, productID string) (*ProductInfo, error)
}

// Notifier 瞬时通知接口
type Notifier interface {
	Success(ctx context.Context, userID, message string)
	Info(ctx context.Context, userID, message string)
}
