// Package memory 商品目录的内存仓储实现，数据来自固定装载集
package memory

import (
	"context"
	"sync"

	"github.com/novamart/storefront/internal/catalog/domain"
)

type productRepository struct {
	mu sync.RWMutex
	// 保持目录顺序
	order    []string
	products map[string]*domain.Product
}

// NewProductRepository 创建内存商品仓储并装载固定数据
func NewProductRepository() domain.ProductRepository {
	r := &productRepository{products: make(map[string]*domain.Product)}
	for _, p := range fixtureProducts() {
		r.order = append(r.order, p.ID)
		r.products[p.ID] = p
	}
	return r
}

func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.products[product.ID]; !exists {
		r.order = append(r.order, product.ID)
	}
	r.products[product.ID] = product
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.products[id])
	}
	return result, nil
}

type categoryRepository struct {
	tree []*domain.Category
}

// NewCategoryRepository 创建只读分类树仓储
func NewCategoryRepository() domain.CategoryRepository {
	return &categoryRepository{tree: fixtureCategories()}
}

func (r *categoryRepository) Tree(ctx context.Context) ([]*domain.Category, error) {
	return r.tree, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if node := domain.FindCategory(r.tree, id); node != nil {
		return node, nil
	}
	return nil, domain.ErrCategoryNotFound
}
