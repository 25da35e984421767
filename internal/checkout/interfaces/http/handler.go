// Package http 结算流程的 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront/internal/checkout/application"
	"github.com/novamart/storefront/internal/checkout/domain"
	"github.com/novamart/storefront/pkg/logger"
	"github.com/novamart/storefront/pkg/response"
)

const guestUserID = "guest"

// CheckoutHandler HTTP 处理器
type CheckoutHandler struct {
	svc *application.CheckoutApplicationService
}

// NewCheckoutHandler 创建 HTTP 处理器实例
func NewCheckoutHandler(svc *application.CheckoutApplicationService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	{
		checkout.GET("", h.GetState)
		checkout.POST("/continue", h.Continue)
		checkout.POST("/back", h.Back)
		checkout.POST("/confirm", h.Confirm)
	}
}

func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return guestUserID
}

// GetState 当前步骤与金额拆分
func (h *CheckoutHandler) GetState(c *gin.Context) {
	state, err := h.svc.State(c.Request.Context(), userID(c))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, state)
}

// Continue 前进到下一步
func (h *CheckoutHandler) Continue(c *gin.Context) {
	checkout, err := h.svc.Continue(c.Request.Context(), userID(c))
	if err != nil {
		h.transitionError(c, err)
		return
	}
	response.Success(c, checkout)
}

// Back 回退到上一步
func (h *CheckoutHandler) Back(c *gin.Context) {
	checkout, err := h.svc.Back(c.Request.Context(), userID(c))
	if err != nil {
		h.transitionError(c, err)
		return
	}
	response.Success(c, checkout)
}

// Confirm 确认支付。客户端断开会取消请求上下文，从而中止模拟处理。
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	result, err := h.svc.Confirm(c.Request.Context(), userID(c))
	if err != nil {
		logger.Warn(c.Request.Context(), "Checkout confirm rejected", "error", err)
		h.transitionError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *CheckoutHandler) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAtReview),
		errors.Is(err, domain.ErrAtFinalStep),
		errors.Is(err, domain.ErrAlreadyProcessing),
		errors.Is(err, domain.ErrEmptyCart):
		response.ErrorWithStatus(c, http.StatusConflict, err.Error(), nil)
	default:
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
	}
}
