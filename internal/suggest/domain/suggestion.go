// Package domain 搜索建议的领域接口
package domain

import "context"

// Suggester 文本建议服务接口，返回有序的建议词，失败时由调用方降级为空列表
type Suggester interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}
