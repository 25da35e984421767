// Package http 后台运营的 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront/internal/admin/application"
	"github.com/novamart/storefront/internal/admin/domain"
	"github.com/novamart/storefront/pkg/response"
)

// AdminHandler HTTP 处理器
type AdminHandler struct {
	svc *application.AdminApplicationService
}

// NewAdminHandler 创建 HTTP 处理器实例
func NewAdminHandler(svc *application.AdminApplicationService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/summary", h.GetSummary)
		admin.GET("/tickets", h.ListTickets)
		admin.POST("/tickets/:id/resolve", h.ResolveTicket)
		admin.GET("/sellers", h.ListSellers)
		admin.GET("/users", h.ListUsers)
	}
}

// GetSummary 运营看板汇总
func (h *AdminHandler) GetSummary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, summary)
}

// ListTickets 工单列表
func (h *AdminHandler) ListTickets(c *gin.Context) {
	tickets, err := h.svc.ListTickets(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, tickets)
}

// ResolveTicket 关闭工单
func (h *AdminHandler) ResolveTicket(c *gin.Context) {
	ticket, err := h.svc.ResolveTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, ticket)
}

// ListSellers 卖家列表
func (h *AdminHandler) ListSellers(c *gin.Context) {
	sellers, err := h.svc.ListSellers(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, sellers)
}

// ListUsers 用户列表
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, users)
}
