// Package http 搜索建议的 HTTP 处理器
package http

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront/internal/suggest/application"
	"github.com/novamart/storefront/internal/suggest/domain"
	"github.com/novamart/storefront/pkg/response"
)

const guestUserID = "guest"

// SuggestHandler HTTP 处理器。每个会话持有独立的防抖流水线，
// 同一会话的连续键入在服务端合并为一次建议请求。
type SuggestHandler struct {
	suggester domain.Suggester
	cfg       application.PipelineConfig

	mu        sync.Mutex
	pipelines map[string]*application.Pipeline
}

// NewSuggestHandler 创建 HTTP 处理器实例
func NewSuggestHandler(suggester domain.Suggester, cfg application.PipelineConfig) *SuggestHandler {
	return &SuggestHandler{
		suggester: suggester,
		cfg:       cfg,
		pipelines: make(map[string]*application.Pipeline),
	}
}

// RegisterRoutes 注册路由
func (h *SuggestHandler) RegisterRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	{
		search.GET("/suggestions", h.GetSuggestions)
	}
}

func (h *SuggestHandler) pipeline(sessionID string) *application.Pipeline {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.pipelines[sessionID]
	if !ok {
		p = application.NewPipeline(h.suggester, h.cfg)
		h.pipelines[sessionID] = p
	}
	return p
}

// GetSuggestions 提交一次键入并返回当前建议快照。
// 建议是异步产生的，客户端通过轮询同一接口拿到最终列表。
func (h *SuggestHandler) GetSuggestions(c *gin.Context) {
	sessionID := c.GetHeader("X-User-ID")
	if sessionID == "" {
		sessionID = guestUserID
	}

	p := h.pipeline(sessionID)
	if query, ok := c.GetQuery("q"); ok {
		p.Input(query)
	}

	response.Success(c, gin.H{
		"suggestions": p.Suggestions(),
		"searching":   p.Searching(),
	})
}

// Close 关闭全部会话流水线
func (h *SuggestHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range h.pipelines {
		p.Close()
	}
	h.pipelines = make(map[string]*application.Pipeline)
}
