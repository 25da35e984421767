// Package application 搜索建议的防抖流水线
package application

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/novamart/storefront/internal/suggest/domain"
	"github.com/novamart/storefront/pkg/debounce"
	"github.com/novamart/storefront/pkg/logger"
)

// PipelineConfig 流水线参数
type PipelineConfig struct {
	// 防抖窗口
	Debounce time.Duration
	// 触发请求的最小字符数，低于此值立即清空建议
	MinQueryLength int
	// 建议条数上限
	MaxSuggestions int
	// 单次请求超时
	RequestTimeout time.Duration
}

// Pipeline 把连续键入合并为一次建议请求。
// 每次键入重置防抖计时；计时器到期后取消上一个在途请求再发起新请求，
// 响应只有在代数仍是最新时才会落地，过期响应被丢弃。
type Pipeline struct {
	suggester domain.Suggester
	debouncer *debounce.Debouncer
	cfg       PipelineConfig

	mu          sync.Mutex
	generation  uint64
	cancel      context.CancelFunc
	suggestions []string
	searching   bool
}

// NewPipeline 创建建议流水线
func NewPipeline(suggester domain.Suggester, cfg PipelineConfig) *Pipeline {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 400 * time.Millisecond
	}
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = 3
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 5
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	return &Pipeline{
		suggester: suggester,
		debouncer: debounce.New(cfg.Debounce),
		cfg:       cfg,
	}
}

// Input 处理一次键入。短查询立即清空建议且不发请求。
func (p *Pipeline) Input(query string) {
	if utf8.RuneCountInString(query) < p.cfg.MinQueryLength {
		p.debouncer.Cancel()
		p.mu.Lock()
		p.generation++
		if p.cancel != nil {
			p.cancel()
			p.cancel = nil
		}
		p.suggestions = nil
		p.searching = false
		p.mu.Unlock()
		return
	}

	p.debouncer.Do(func() {
		p.fetch(query)
	})
}

// fetch 在防抖计时器到期后执行，运行于计时器 goroutine
func (p *Pipeline) fetch(query string) {
	p.mu.Lock()
	p.generation++
	generation := p.generation
	if p.cancel != nil {
		// 取消被替代的在途请求
		p.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.RequestTimeout)
	p.cancel = cancel
	p.searching = true
	p.mu.Unlock()

	results, err := p.suggester.Suggest(ctx, query)
	cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if generation != p.generation {
		// 已有更新的键入或请求，丢弃过期响应
		return
	}
	p.searching = false
	if err != nil {
		logger.Debug(ctx, "Suggestion request degraded to empty", "query", query, "error", err)
		p.suggestions = nil
		return
	}
	if len(results) > p.cfg.MaxSuggestions {
		results = results[:p.cfg.MaxSuggestions]
	}
	p.suggestions = results
}

// Suggestions 当前建议列表快照
func (p *Pipeline) Suggestions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.suggestions))
	copy(out, p.suggestions)
	return out
}

// Searching 是否有请求在途
func (p *Pipeline) Searching() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searching
}

// Close 取消待执行的防抖与在途请求
func (p *Pipeline) Close() {
	p.debouncer.Cancel()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}
