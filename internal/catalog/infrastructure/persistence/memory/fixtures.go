package memory

import (
	"github.com/shopspring/decimal"

	"github.com/novamart/storefront/internal/catalog/domain"
)

// fixtureProducts 目录固定装载集
func fixtureProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:          "1",
			SKU:         "ZEN-AUDIO-001",
			Name:        "Zenith Pro Wireless Headphones",
			Brand:       "Zenith",
			Description: "High-fidelity audio with active noise cancellation and 40-hour battery life.",
			Price:       decimal.NewFromInt(299),
			OldPrice:    decimal.NewFromInt(349),
			Category:    "Electronics",
			SubCategory: "Audio",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			Rating:      4.8,
			Reviews:     1240,
			Stock:       15,
			Status:      domain.ProductStatusPublished,
			IsBestSeller: true,
			Specifications: []domain.Specification{
				{Label: "Driver Size", Value: "40mm Dynamic"},
				{Label: "Connectivity", Value: "Bluetooth 5.2, USB-C"},
			},
		},
		{
			ID:          "2",
			SKU:         "LUXE-TEE-099",
			Name:        "Luxe Cotton Minimalist Tee",
			Brand:       "NovaBasics",
			Description: "100% organic cotton, breathable, and perfect for every season.",
			Price:       decimal.NewFromInt(45),
			OldPrice:    decimal.NewFromInt(55),
			Category:    "Fashion",
			SubCategory: "Menswear",
			Image:       "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?w=800&q=80",
			Rating:      4.5,
			Reviews:     850,
			Stock:       100,
			Status:      domain.ProductStatusPublished,
			Specifications: []domain.Specification{
				{Label: "Material", Value: "100% Organic Cotton"},
			},
		},
		{
			ID:          "4",
			SKU:         "GLOW-SERUM-01",
			Name:        "Vitamin C Radiance Serum",
			Brand:       "GlowLabs",
			Description: "Advanced antioxidant formula for brighter, firmer skin.",
			Price:       decimal.NewFromInt(34),
			OldPrice:    decimal.NewFromInt(42),
			Category:    "Beauty",
			SubCategory: "Skincare",
			Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=800&q=80",
			Rating:      4.7,
			Reviews:     4200,
			Stock:       85,
			Status:      domain.ProductStatusPublished,
			IsBestSeller: true,
		},
	}
}

// fixtureCategories 三级分类树固定装载集
func fixtureCategories() []*domain.Category {
	return []*domain.Category{
		{
			ID: "c1", Name: "Electronics", Slug: "electronics", Level: 1, Icon: "⚡", ItemCount: 1240,
			Children: []*domain.Category{
				{ID: "c1-1", Name: "Mobiles", Slug: "mobiles", Level: 2, ParentID: "c1", ItemCount: 450},
				{ID: "c1-2", Name: "Laptops", Slug: "laptops", Level: 2, ParentID: "c1", ItemCount: 320},
				{
					ID: "c1-3", Name: "Audio", Slug: "audio", Level: 2, ParentID: "c1", ItemCount: 280,
					Children: []*domain.Category{
						{ID: "c1-3-1", Name: "Headphones", Slug: "headphones", Level: 3, ParentID: "c1-3", ItemCount: 150},
						{ID: "c1-3-2", Name: "Speakers", Slug: "speakers", Level: 3, ParentID: "c1-3", ItemCount: 130},
					},
				},
			},
		},
		{
			ID: "c2", Name: "Fashion", Slug: "fashion", Level: 1, Icon: "👕", ItemCount: 3500,
			Children: []*domain.Category{
				{ID: "c2-1", Name: "Menswear", Slug: "menswear", Level: 2, ParentID: "c2", ItemCount: 1200},
				{ID: "c2-2", Name: "Womenswear", Slug: "womenswear", Level: 2, ParentID: "c2", ItemCount: 1800},
			},
		},
		{
			ID: "c3", Name: "Beauty", Slug: "beauty", Level: 1, Icon: "💄", ItemCount: 1100,
			Children: []*domain.Category{
				{ID: "c3-1", Name: "Skincare", Slug: "skincare", Level: 2, ParentID: "c3", ItemCount: 600},
				{ID: "c3-2", Name: "Makeup", Slug: "makeup", Level: 2, ParentID: "c3", ItemCount: 300},
			},
		},
		{ID: "c4", Name: "Home & Kitchen", Slug: "home-kitchen", Level: 1, Icon: "🏠", ItemCount: 850},
		{ID: "c5", Name: "Health", Slug: "health", Level: 1, Icon: "💊", ItemCount: 600},
		{ID: "c6", Name: "Groceries", Slug: "groceries", Level: 1, Icon: "🥦", ItemCount: 5000},
		{ID: "c7", Name: "Toys & Baby", Slug: "toys-baby", Level: 1, Icon: "🧸", ItemCount: 1200},
		{ID: "c8", Name: "Sports", Slug: "sports", Level: 1, Icon: "⚽", ItemCount: 900},
		{ID: "c9", Name: "Books", Slug: "books", Level: 1, Icon: "📚", ItemCount: 2200},
		{ID: "c10", Name: "Automotive", Slug: "automotive", Level: 1, Icon: "🚗", ItemCount: 400},
	}
}
