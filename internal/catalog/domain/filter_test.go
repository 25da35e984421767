package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []*Product {
	return []*Product{
		{
			ID: "1", Name: "Zenith Pro Wireless Headphones",
			Description: "High-fidelity audio with active noise cancellation and 40-hour battery life.",
			Price:       decimal.NewFromInt(299),
			Category:    "Electronics", SubCategory: "Audio", Rating: 4.8,
		},
		{
			ID: "2", Name: "Luxe Cotton Minimalist Tee",
			Description: "100% organic cotton, breathable, and perfect for every season.",
			Price:       decimal.NewFromInt(45),
			Category:    "Fashion", SubCategory: "Menswear", Rating: 4.5,
		},
		{
			ID: "4", Name: "Vitamin C Radiance Serum",
			Description: "Advanced antioxidant formula for brighter, firmer skin.",
			Price:       decimal.NewFromInt(34),
			Category:    "Beauty", SubCategory: "Skincare", Rating: 4.7,
		},
	}
}

func TestFilter_QuerySubstring(t *testing.T) {
	result := Filter{Query: "seru"}.Apply(testProducts())

	require.Len(t, result, 1)
	assert.Equal(t, "Vitamin C Radiance Serum", result[0].Name)
}

func TestFilter_QueryCaseInsensitive(t *testing.T) {
	result := Filter{Query: "ZENITH"}.Apply(testProducts())

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestFilter_QueryMatchesDescription(t *testing.T) {
	result := Filter{Query: "organic cotton"}.Apply(testProducts())

	require.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}

func TestFilter_CategoryByNodeName(t *testing.T) {
	audio := &Category{ID: "c1-3", Name: "Audio", Level: 2}

	result := Filter{Category: audio}.Apply(testProducts())

	require.Len(t, result, 1)
	assert.Equal(t, "Zenith Pro Wireless Headphones", result[0].Name)
}

func TestFilter_TopLevelCategory(t *testing.T) {
	beauty := &Category{ID: "c3", Name: "Beauty", Level: 1}

	result := Filter{Category: beauty}.Apply(testProducts())

	require.Len(t, result, 1)
	assert.Equal(t, "4", result[0].ID)
}

func TestFilter_NoMatchIsEmptyNotNil(t *testing.T) {
	result := Filter{Query: "nonexistent gadget"}.Apply(testProducts())

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilter_SortPriceAsc(t *testing.T) {
	result := Filter{Sort: SortPriceAsc}.Apply(testProducts())

	require.Len(t, result, 3)
	assert.Equal(t, "34", result[0].Price.String())
	assert.Equal(t, "45", result[1].Price.String())
	assert.Equal(t, "299", result[2].Price.String())
}

func TestFilter_SortPriceDesc(t *testing.T) {
	result := Filter{Sort: SortPriceDesc}.Apply(testProducts())

	require.Len(t, result, 3)
	assert.Equal(t, "299", result[0].Price.String())
	assert.Equal(t, "34", result[2].Price.String())
}

func TestFilter_SortTopRated(t *testing.T) {
	result := Filter{Sort: SortTopRated}.Apply(testProducts())

	require.Len(t, result, 3)
	assert.Equal(t, 4.8, result[0].Rating)
	assert.Equal(t, 4.7, result[1].Rating)
	assert.Equal(t, 4.5, result[2].Rating)
}

func TestFilter_SortStableOnEqualPrices(t *testing.T) {
	products := []*Product{
		{ID: "a", Price: decimal.NewFromInt(10)},
		{ID: "b", Price: decimal.NewFromInt(10)},
		{ID: "c", Price: decimal.NewFromInt(5)},
		{ID: "d", Price: decimal.NewFromInt(10)},
	}

	result := Filter{Sort: SortPriceAsc}.Apply(products)

	require.Len(t, result, 4)
	assert.Equal(t, "c", result[0].ID)
	// 等价元素保持目录顺序
	assert.Equal(t, "a", result[1].ID)
	assert.Equal(t, "b", result[2].ID)
	assert.Equal(t, "d", result[3].ID)
}

func TestFilter_FeaturedPreservesCatalogOrder(t *testing.T) {
	result := Filter{Sort: SortFeatured}.Apply(testProducts())

	require.Len(t, result, 3)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "2", result[1].ID)
	assert.Equal(t, "4", result[2].ID)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := testProducts()

	Filter{Sort: SortPriceAsc}.Apply(products)

	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[1].ID)
	assert.Equal(t, "4", products[2].ID)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price_asc"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("bogus"))
}

func TestFindCategory(t *testing.T) {
	tree := []*Category{
		{ID: "c1", Name: "Electronics", Level: 1, Children: []*Category{
			{ID: "c1-3", Name: "Audio", Level: 2, ParentID: "c1", Children: []*Category{
				{ID: "c1-3-1", Name: "Headphones", Level: 3, ParentID: "c1-3"},
			}},
		}},
	}

	assert.Equal(t, "Audio", FindCategory(tree, "c1-3").Name)
	assert.Equal(t, "Headphones", FindCategory(tree, "c1-3-1").Name)
	assert.Nil(t, FindCategory(tree, "missing"))
}
