// Package http 商品目录的 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/novamart/storefront/internal/catalog/application"
	"github.com/novamart/storefront/internal/catalog/domain"
	"github.com/novamart/storefront/pkg/logger"
	"github.com/novamart/storefront/pkg/response"
)

// CatalogHandler HTTP 处理器
type CatalogHandler struct {
	svc *application.CatalogApplicationService
}

// NewCatalogHandler 创建 HTTP 处理器实例
func NewCatalogHandler(svc *application.CatalogApplicationService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/:id/analysis", h.GetAnalysis)
		products.POST("", h.CreateProduct)
	}
	categories := router.Group("/categories")
	{
		categories.GET("", h.GetCategoryTree)
		categories.GET("/:id/children", h.GetSubcategories)
		categories.GET("/:id/breadcrumbs", h.GetBreadcrumbs)
	}
}

// ListProducts 按查询条件列出商品
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	query := c.Query("q")
	categoryID := c.Query("category")
	sort := domain.ParseSortKey(c.Query("sort"))

	result, err := h.svc.Search(c.Request.Context(), query, categoryID, sort)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to search products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, gin.H{"products": result, "total": len(result)})
}

// GetProduct 获取商品详情
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, p)
}

// GetAnalysis 获取商品卖点短评
func (h *CatalogHandler) GetAnalysis(c *gin.Context) {
	text, err := h.svc.Analysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, gin.H{"analysis": text})
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	SKU                 string  `json:"sku" binding:"required"`
	Name                string  `json:"name" binding:"required"`
	Brand               string  `json:"brand"`
	Description         string  `json:"description"`
	Price               float64 `json:"price" binding:"min=0"`
	OldPrice            float64 `json:"old_price"`
	Category            string  `json:"category" binding:"required"`
	SubCategory         string  `json:"sub_category"`
	Image               string  `json:"image"`
	Stock               int     `json:"stock"`
	Status              string  `json:"status"`
	GenerateDescription bool    `json:"generate_description"`
	GenerateSEO         bool    `json:"generate_seo"`
	GeneratePolicies    bool    `json:"generate_policies"`
}

// CreateProduct 创建商品
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cmd := application.CreateProductCommand{
		SKU:                 req.SKU,
		Name:                req.Name,
		Brand:               req.Brand,
		Description:         req.Description,
		Price:               decimal.NewFromFloat(req.Price),
		OldPrice:            decimal.NewFromFloat(req.OldPrice),
		Category:            req.Category,
		SubCategory:         req.SubCategory,
		Image:               req.Image,
		Stock:               req.Stock,
		Status:              domain.ProductStatus(req.Status),
		GenerateDescription: req.GenerateDescription,
		GenerateSEO:         req.GenerateSEO,
		GeneratePolicies:    req.GeneratePolicies,
	}

	p, err := h.svc.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to create product", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, p)
}

// GetCategoryTree 获取分类树
func (h *CatalogHandler) GetCategoryTree(c *gin.Context) {
	tree, err := h.svc.CategoryTree(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, gin.H{"categories": tree})
}

// GetSubcategories 获取选中节点的子分类网格
func (h *CatalogHandler) GetSubcategories(c *gin.Context) {
	children, err := h.svc.Subcategories(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			response.NotFound(c, "category not found")
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, gin.H{"categories": children})
}

// GetBreadcrumbs 获取面包屑
func (h *CatalogHandler) GetBreadcrumbs(c *gin.Context) {
	crumbs, err := h.svc.Breadcrumbs(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			response.NotFound(c, "category not found")
			return
		}
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, gin.H{"breadcrumbs": crumbs})
}
