// Package http 提示消息的 HTTP 处理器
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront/internal/notification/application"
	"github.com/novamart/storefront/pkg/response"
)

const guestUserID = "guest"

// NotificationHandler HTTP 处理器
type NotificationHandler struct {
	svc *application.NotificationApplicationService
}

// NewNotificationHandler 创建 HTTP 处理器实例
func NewNotificationHandler(svc *application.NotificationApplicationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", h.ListRecent)
	}
}

// ListRecent 当前用户最近的提示消息，新消息在前
func (h *NotificationHandler) ListRecent(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = guestUserID
	}

	toasts, err := h.svc.Recent(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, toasts)
}
