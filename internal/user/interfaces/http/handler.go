// Package http 认证相关的 HTTP 处理器
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront/internal/user/application"
	"github.com/novamart/storefront/internal/user/domain"
	"github.com/novamart/storefront/pkg/response"
)

// UserHandler HTTP 处理器
type UserHandler struct {
	svc *application.UserApplicationService
}

// NewUserHandler 创建 HTTP 处理器实例
func NewUserHandler(svc *application.UserApplicationService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 注册请求体
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Login 登录并签发会话令牌
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Login(c.Request.Context(), application.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserBlocked) {
			response.ErrorWithStatus(c, http.StatusForbidden, err.Error(), nil)
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, result)
}

// Register 注册新账户
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Register(c.Request.Context(), application.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			response.ErrorWithStatus(c, http.StatusConflict, err.Error(), nil)
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, result)
}

// Logout 吊销当前令牌
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, nil)
}

// Me 返回当前会话的用户信息
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.svc.CurrentUser(c.Request.Context(), bearerToken(c))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	response.Success(c, user)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
