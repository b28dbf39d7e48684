package catalog

import "github.com/shopspring/decimal"

// SeedProducts returns the default catalog used when no products snapshot exists
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Wireless Bluetooth Headphones",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life. Perfect for music lovers and professionals.",
			Price:       decimal.RequireFromString("99.99"),
			Category:    CategoryElectronics,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
			Stock:       50,
		},
		{
			ID:          2,
			Name:        "Premium Cotton T-Shirt",
			Description: "Soft, comfortable 100% organic cotton t-shirt available in multiple colors. Sustainable and eco-friendly fashion choice.",
			Price:       decimal.RequireFromString("24.99"),
			Category:    CategoryClothing,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop",
			Stock:       100,
		},
		{
			ID:          3,
			Name:        "JavaScript: The Definitive Guide",
			Description: "Comprehensive guide to JavaScript programming language. Perfect for beginners and advanced developers alike.",
			Price:       decimal.RequireFromString("39.99"),
			Category:    CategoryBooks,
			Image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&h=300&fit=crop",
			Stock:       25,
		},
		{
			ID:          4,
			Name:        "Smart Fitness Watch",
			Description: "Advanced fitness tracking with heart rate monitor, GPS, and 7-day battery life. Perfect companion for your fitness journey.",
			Price:       decimal.RequireFromString("199.99"),
			Category:    CategoryElectronics,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop",
			Stock:       30,
		},
		{
			ID:          5,
			Name:        "Classic Denim Jeans",
			Description: "Timeless straight-cut denim jeans made from premium quality fabric. Comfortable fit for everyday wear.",
			Price:       decimal.RequireFromString("59.99"),
			Category:    CategoryClothing,
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=300&fit=crop",
			Stock:       75,
		},
		{
			ID:          6,
			Name:        "Python Programming Cookbook",
			Description: "Learn Python programming with practical recipes and real-world examples. Great for data science and web development.",
			Price:       decimal.RequireFromString("44.99"),
			Category:    CategoryBooks,
			Image:       "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=400&h=300&fit=crop",
			Stock:       40,
		},
	}
}
