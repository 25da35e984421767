package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront/internal/catalog/domain"
	"github.com/novamart/storefront/internal/catalog/infrastructure/persistence/memory"
)

type stubGenerator struct {
	description string
	analysis    string
	seo         *domain.SEOData
	policies    *domain.TrustPolicies
	err         error
}

func (g *stubGenerator) Description(ctx context.Context, name, category string) (string, error) {
	return g.description, g.err
}

func (g *stubGenerator) Analysis(ctx context.Context, name string) (string, error) {
	return g.analysis, g.err
}

func (g *stubGenerator) SEOData(ctx context.Context, name, category string) (*domain.SEOData, error) {
	return g.seo, g.err
}

func (g *stubGenerator) TrustPolicies(ctx context.Context, name, category string) (*domain.TrustPolicies, error) {
	return g.policies, g.err
}

type recordingPublisher struct {
	topics []string
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	p.topics = append(p.topics, topic)
	return nil
}

func newService(gen domain.CopyGenerator) (*CatalogApplicationService, *recordingPublisher) {
	pub := &recordingPublisher{}
	svc := NewCatalogApplicationService(
		memory.NewProductRepository(),
		memory.NewCategoryRepository(),
		gen,
		pub,
	)
	return svc, pub
}

func TestSearch_ByQuery(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	result, err := svc.Search(context.Background(), "seru", "", domain.SortFeatured)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Vitamin C Radiance Serum", result[0].Name)
}

func TestSearch_ByCategoryID(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	// c1-3 是 Audio 子分类
	result, err := svc.Search(context.Background(), "", "c1-3", domain.SortFeatured)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestSearch_UnknownCategoryIsEmpty(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	result, err := svc.Search(context.Background(), "", "missing", domain.SortFeatured)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearch_SortPriceAsc(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	result, err := svc.Search(context.Background(), "", "", domain.SortPriceAsc)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, result[0].Price.LessThanOrEqual(result[1].Price))
	assert.True(t, result[1].Price.LessThanOrEqual(result[2].Price))
}

func TestGetProduct_Miss(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	_, err := svc.GetProduct(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSubcategories_NoSelectionReturnsTopLevel(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	grid, err := svc.Subcategories(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, grid, 10)
	assert.Equal(t, "Electronics", grid[0].Name)
}

func TestSubcategories_SelectedNodeChildren(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	children, err := svc.Subcategories(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, "Mobiles", children[0].Name)
}

func TestBreadcrumbs(t *testing.T) {
	svc, _ := newService(&stubGenerator{})

	crumbs, err := svc.Breadcrumbs(context.Background(), "c1-3")
	require.NoError(t, err)
	require.Len(t, crumbs, 2)
	assert.Equal(t, "Home", crumbs[0].Name)
	assert.Equal(t, "Audio", crumbs[1].Name)

	root, err := svc.Breadcrumbs(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, root, 1)
	assert.Equal(t, "Home", root[0].Name)
}

func TestAnalysis_FallbackOnError(t *testing.T) {
	svc, _ := newService(&stubGenerator{err: errors.New("upstream timeout")})

	text, err := svc.Analysis(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, fallbackAnalysis, text)
}

func TestCreateProduct_DefaultsAndEvent(t *testing.T) {
	svc, pub := newService(&stubGenerator{})

	p, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		SKU:      "NEW-001",
		Name:     "Aurora Desk Lamp",
		Category: "Home & Kitchen",
		Price:    decimal.NewFromInt(59),
		Stock:    20,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, float64(5), p.Rating)
	assert.Equal(t, 0, p.Reviews)
	assert.Equal(t, domain.ProductStatusDraft, p.Status)
	assert.Equal(t, []string{"catalog.product.created"}, pub.topics)

	// 新商品可以被再次读取
	got, err := svc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aurora Desk Lamp", got.Name)
}

func TestCreateProduct_GeneratedCopyFallbacks(t *testing.T) {
	svc, _ := newService(&stubGenerator{err: errors.New("quota exceeded")})

	p, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		SKU:                 "NEW-002",
		Name:                "Nimbus Air Purifier",
		Category:            "Home & Kitchen",
		Price:               decimal.NewFromInt(129),
		GenerateDescription: true,
		GeneratePolicies:    true,
		GenerateSEO:         true,
	})

	require.NoError(t, err)
	assert.Equal(t, fallbackDescription, p.Description)
	assert.Equal(t, fallbackWarranty, p.Warranty)
	assert.Equal(t, fallbackReturnPolicy, p.ReturnPolicy)
	assert.Nil(t, p.SEO)
}

func TestCreateProduct_GeneratedCopySuccess(t *testing.T) {
	svc, _ := newService(&stubGenerator{
		description: "Hand-crafted lamp for modern desks.",
		seo:         &domain.SEOData{MetaTitle: "Aurora", Slug: "aurora-desk-lamp"},
		policies:    &domain.TrustPolicies{Warranty: "2 years", ReturnPolicy: "30 days"},
	})

	p, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		SKU:                 "NEW-003",
		Name:                "Aurora Desk Lamp",
		Category:            "Home & Kitchen",
		Price:               decimal.NewFromInt(59),
		GenerateDescription: true,
		GenerateSEO:         true,
		GeneratePolicies:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hand-crafted lamp for modern desks.", p.Description)
	require.NotNil(t, p.SEO)
	assert.Equal(t, "aurora-desk-lamp", p.SEO.Slug)
	assert.Equal(t, "2 years", p.Warranty)
}
