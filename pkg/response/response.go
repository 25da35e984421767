// Package response 提供统一的 HTTP 响应格式
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 统一响应结构
type Body struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success 返回成功响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{
		Code:    0,
		Message: "ok",
		Data:    data,
	})
}

// ErrorWithStatus 返回带 HTTP 状态码的错误响应
func ErrorWithStatus(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Body{
		Code:    status,
		Message: message,
		Data:    data,
	})
}

// BadRequest 返回参数错误响应
func BadRequest(c *gin.Context, message string) {
	ErrorWithStatus(c, http.StatusBadRequest, message, nil)
}

// NotFound 返回资源不存在响应
func NotFound(c *gin.Context, message string) {
	ErrorWithStatus(c, http.StatusNotFound, message, nil)
}
