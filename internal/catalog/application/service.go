// Package application 商品目录的应用服务
package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novamart/storefront/internal/catalog/domain"
	"github.com/novamart/storefront/pkg/logger"
)

// 外部文案服务失败时的固定降级文案
const (
	fallbackDescription  = "Failed to generate description. Please enter manually."
	fallbackAnalysis     = "This product is highly rated and recommended by our experts."
	fallbackWarranty     = "Standard 1-year brand warranty applies."
	fallbackReturnPolicy = "Easy 7-day return if item is unopened and in original packaging."
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	SKU         string
	Name        string
	Brand       string
	Description string
	Price       decimal.Decimal
	OldPrice    decimal.Decimal
	Category    string
	SubCategory string
	Image       string
	Stock       int
	Status      domain.ProductStatus
	// 为空的字段是否交给文案服务补全
	GenerateDescription bool
	GenerateSEO         bool
	GeneratePolicies    bool
}

// CatalogApplicationService 商品目录服务门面
type CatalogApplicationService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	generator  domain.CopyGenerator
	publisher  domain.EventPublisher
}

// NewCatalogApplicationService 创建商品目录服务实例
func NewCatalogApplicationService(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	generator domain.CopyGenerator,
	publisher domain.EventPublisher,
) *CatalogApplicationService {
	return &CatalogApplicationService{
		products:   products,
		categories: categories,
		generator:  generator,
		publisher:  publisher,
	}
}

// GetProduct 根据 ID 获取商品
func (s *CatalogApplicationService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// Search 按文本、分类与排序键筛选商品。
// categoryID 为空表示不限分类；未知分类 ID 返回空结果而非错误。
func (s *CatalogApplicationService) Search(ctx context.Context, query, categoryID string, sort domain.SortKey) ([]*domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.Filter{Query: query, Sort: sort}
	if categoryID != "" {
		node, err := s.categories.GetByID(ctx, categoryID)
		if err != nil {
			return []*domain.Product{}, nil
		}
		filter.Category = node
	}

	return filter.Apply(all), nil
}

// CategoryTree 获取完整分类树
func (s *CatalogApplicationService) CategoryTree(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.Tree(ctx)
}

// Subcategories 选中节点的直接子分类；未选中时返回顶级分类网格
func (s *CatalogApplicationService) Subcategories(ctx context.Context, selectedID string) ([]*domain.Category, error) {
	if selectedID == "" {
		return s.categories.Tree(ctx)
	}
	node, err := s.categories.GetByID(ctx, selectedID)
	if err != nil {
		return nil, err
	}
	return node.Children, nil
}

// Breadcrumbs 由当前选中分类派生面包屑，固定以 Home 为根
func (s *CatalogApplicationService) Breadcrumbs(ctx context.Context, selectedID string) ([]domain.Breadcrumb, error) {
	crumbs := []domain.Breadcrumb{{Name: "Home"}}
	if selectedID == "" {
		return crumbs, nil
	}
	node, err := s.categories.GetByID(ctx, selectedID)
	if err != nil {
		return nil, err
	}
	crumbs = append(crumbs, domain.Breadcrumb{Name: node.Name, CategoryID: node.ID})
	return crumbs, nil
}

// Analysis 获取商品卖点短评，失败时返回固定文案
func (s *CatalogApplicationService) Analysis(ctx context.Context, productID string) (string, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}

	text, err := s.generator.Analysis(ctx, p.Name)
	if err != nil || text == "" {
		logger.Warn(ctx, "Product analysis generation degraded to fallback",
			"product_id", productID, "error", err)
		return fallbackAnalysis, nil
	}
	return text, nil
}

// CreateProduct 创建商品，生成新标识与默认评分，按需调用文案服务补全
func (s *CatalogApplicationService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	p := &domain.Product{
		ID:          uuid.NewString(),
		SKU:         cmd.SKU,
		Name:        cmd.Name,
		Brand:       cmd.Brand,
		Description: cmd.Description,
		Price:       cmd.Price,
		OldPrice:    cmd.OldPrice,
		Category:    cmd.Category,
		SubCategory: cmd.SubCategory,
		Image:       cmd.Image,
		Stock:       cmd.Stock,
		Rating:      5,
		Reviews:     0,
		Status:      cmd.Status,
	}
	if p.Status == "" {
		p.Status = domain.ProductStatusDraft
	}

	if cmd.GenerateDescription && p.Description == "" {
		desc, err := s.generator.Description(ctx, p.Name, p.Category)
		if err != nil || desc == "" {
			logger.Warn(ctx, "Description generation degraded to fallback",
				"product", p.Name, "error", err)
			desc = fallbackDescription
		}
		p.Description = desc
	}

	if cmd.GenerateSEO {
		seo, err := s.generator.SEOData(ctx, p.Name, p.Category)
		if err != nil {
			logger.Warn(ctx, "SEO generation skipped", "product", p.Name, "error", err)
		} else {
			p.SEO = seo
		}
	}

	if cmd.GeneratePolicies {
		policies, err := s.generator.TrustPolicies(ctx, p.Name, p.Category)
		if err != nil {
			policies = &domain.TrustPolicies{
				Warranty:     fallbackWarranty,
				ReturnPolicy: fallbackReturnPolicy,
			}
		}
		p.Warranty = policies.Warranty
		p.ReturnPolicy = policies.ReturnPolicy
	}

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}

	event := domain.ProductCreatedEvent{
		ProductID: p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "catalog.product.created", p.ID, event); err != nil {
		logger.Warn(ctx, "Failed to publish product created event", "product_id", p.ID, "error", err)
	}

	return p, nil
}
