// Package domain 包含商品目录的领域模型
package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound 分类不存在
var ErrCategoryNotFound = errors.New("category not found")

// ProductStatus 商品生命周期状态
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "Draft"
	ProductStatusPublished ProductStatus = "Published"
	ProductStatusArchived  ProductStatus = "Archived"
)

// Specification 商品规格条目
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SEOData 商品 SEO 元数据
type SEOData struct {
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	Slug            string   `json:"slug"`
	Tags            []string `json:"tags"`
}

// Product 商品实体，目录加载后不可变
type Product struct {
	// 商品 ID
	ID string `json:"id"`
	// SKU 编码
	SKU string `json:"sku"`
	// 名称
	Name string `json:"name"`
	// 品牌
	Brand string `json:"brand"`
	// 描述
	Description string `json:"description"`
	// 短描述
	ShortDescription string `json:"short_description,omitempty"`
	// 售价，保证非负
	Price decimal.Decimal `json:"price"`
	// 划线价，仅用于折扣展示，可为零
	OldPrice decimal.Decimal `json:"old_price,omitempty"`
	// 一级分类名
	Category string `json:"category"`
	// 二级分类名
	SubCategory string `json:"sub_category,omitempty"`
	// 主图
	Image string `json:"image"`
	// 图集
	Images []string `json:"images,omitempty"`
	// 评分
	Rating float64 `json:"rating"`
	// 评价数
	Reviews int `json:"reviews"`
	// 库存
	Stock int `json:"stock"`
	// 低库存阈值
	LowStockThreshold int `json:"low_stock_threshold,omitempty"`
	// 是否热销
	IsBestSeller bool `json:"is_best_seller,omitempty"`
	// 生命周期状态
	Status ProductStatus `json:"status"`
	// 规格列表
	Specifications []Specification `json:"specifications,omitempty"`
	// 保修条款
	Warranty string `json:"warranty,omitempty"`
	// 退货政策
	ReturnPolicy string `json:"return_policy,omitempty"`
	// SEO 元数据
	SEO *SEOData `json:"seo,omitempty"`
}

// IsLowStock 库存是否低于阈值
func (p *Product) IsLowStock() bool {
	threshold := p.LowStockThreshold
	if threshold <= 0 {
		threshold = 10
	}
	return p.Stock < threshold
}

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// 保存商品
	Save(ctx context.Context, product *Product) error
	// 根据 ID 获取商品
	GetByID(ctx context.Context, id string) (*Product, error)
	// 按目录顺序列出全部商品
	List(ctx context.Context) ([]*Product, error)
}

// CategoryRepository 分类仓储接口，分类树只读
type CategoryRepository interface {
	// 获取顶级分类列表（含子树）
	Tree(ctx context.Context) ([]*Category, error)
	// 根据 ID 在树中查找节点
	GetByID(ctx context.Context, id string) (*Category, error)
}
