// Package http 订单查询的 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront/internal/order/application"
	"github.com/novamart/storefront/internal/order/domain"
	"github.com/novamart/storefront/pkg/response"
)

const guestUserID = "guest"

// OrderHandler HTTP 处理器
type OrderHandler struct {
	svc *application.OrderApplicationService
}

// NewOrderHandler 创建 HTTP 处理器实例
func NewOrderHandler(svc *application.OrderApplicationService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListUserOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

// ListUserOrders 当前用户的订单列表
func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = guestUserID
	}

	orders, err := h.svc.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, orders)
}

// GetOrder 按订单号查询
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, order)
}
