package domain

import (
	"sort"
	"strings"
)

// SortKey 商品排序键
type SortKey string

const (
	// SortFeatured 保持目录原始顺序
	SortFeatured SortKey = "featured"
	// SortPriceAsc 价格从低到高
	SortPriceAsc SortKey = "price_asc"
	// SortPriceDesc 价格从高到低
	SortPriceDesc SortKey = "price_desc"
	// SortTopRated 评分从高到低
	SortTopRated SortKey = "top_rated"
)

// ParseSortKey 解析排序键，未知值回退到 featured
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortTopRated:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Filter 商品筛选条件
type Filter struct {
	// 自由文本查询，对名称与描述做大小写不敏感子串匹配
	Query string
	// 选中的分类节点，nil 表示不限分类
	Category *Category
	// 排序键
	Sort SortKey
}

// Apply 在目录序列上执行筛选与稳定排序，返回新切片，不修改输入
func (f Filter) Apply(products []*Product) []*Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	result := make([]*Product, 0, len(products))
	for _, p := range products {
		if query != "" {
			name := strings.ToLower(p.Name)
			desc := strings.ToLower(p.Description)
			if !strings.Contains(name, query) && !strings.Contains(desc, query) {
				continue
			}
		}
		if f.Category != nil && !matchesCategory(p, f.Category) {
			continue
		}
		result = append(result, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.GreaterThan(result[j].Price)
		})
	case SortTopRated:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	}

	return result
}

// matchesCategory 用节点展示名与商品分类字段比较。
// 节点由 ID 选定，同名不同节点不会互相串扰。
func matchesCategory(p *Product, c *Category) bool {
	return p.Category == c.Name || p.SubCategory == c.Name
}
