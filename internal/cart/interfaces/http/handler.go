// Package http 购物车与心愿单的 HTTP 处理器
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront/internal/cart/application"
	"github.com/novamart/storefront/pkg/logger"
	"github.com/novamart/storefront/pkg/response"
)

// 未登录会话的默认用户标识
const guestUserID = "guest"

// CartHandler HTTP 处理器
type CartHandler struct {
	svc *application.CartApplicationService
}

// NewCartHandler 创建 HTTP 处理器实例
func NewCartHandler(svc *application.CartApplicationService) *CartHandler {
	return &CartHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:productId", h.UpdateQuantity)
		cart.DELETE("/items/:productId", h.RemoveItem)
	}
	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("/toggle", h.ToggleWishlist)
	}
}

func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return guestUserID
}

// GetCart 获取购物车
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.svc.GetCart(c.Request.Context(), userID(c))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, gin.H{
		"cart":       cart,
		"total":      cart.Total(),
		"item_count": cart.ItemCount(),
	})
}

// AddItemRequest 添加商品请求
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddItem 添加商品到购物车
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := h.svc.AddItem(c.Request.Context(), application.AddItemCommand{
		UserID:    userID(c),
		ProductID: req.ProductID,
	})
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to add cart item", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, cart)
}

// UpdateQuantityRequest 数量调整请求
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// UpdateQuantity 调整行项目数量
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := h.svc.UpdateQuantity(c.Request.Context(), application.UpdateQuantityCommand{
		UserID:    userID(c),
		ProductID: c.Param("productId"),
		Delta:     req.Delta,
	})
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, cart)
}

// RemoveItem 移除行项目
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.svc.RemoveItem(c.Request.Context(), application.RemoveItemCommand{
		UserID:    userID(c),
		ProductID: c.Param("productId"),
	})
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, cart)
}

// GetWishlist 获取心愿单
func (h *CartHandler) GetWishlist(c *gin.Context) {
	w, err := h.svc.GetWishlist(c.Request.Context(), userID(c))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, w)
}

// ToggleWishlistRequest 心愿单切换请求
type ToggleWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// ToggleWishlist 切换心愿单收藏状态
func (h *CartHandler) ToggleWishlist(c *gin.Context) {
	var req ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	w, err := h.svc.ToggleWishlist(c.Request.Context(), application.ToggleWishlistCommand{
		UserID:    userID(c),
		ProductID: req.ProductID,
	})
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to toggle wishlist", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, w)
}
