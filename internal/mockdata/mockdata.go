// Package mockdata holds the static seed data the store is reseeded from on
// every start. Catalog, user directory, installment packages, and blog posts
// are intentionally not persisted; edits to them do not survive a restart.
package mockdata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/easyqist/storefront/internal/domain"
)

// Users returns the seed user directory.
func Users() []domain.User {
	now := time.Now()
	return []domain.User{
		{
			ID:        "1",
			Email:     "admin@easyqist.com",
			Password:  "admin123",
			Name:      "Admin User",
			Role:      domain.RoleAdmin,
			CreatedAt: now,
		},
		{
			ID:        "2",
			Email:     "customer@example.com",
			Password:  "customer123",
			Name:      "John Doe",
			Phone:     "+1234567890",
			Address:   "123 Main St, City, Country",
			Role:      domain.RoleCustomer,
			CreatedAt: now,
		},
	}
}

// Products returns the seed catalog.
func Products() []domain.Product {
	now := time.Now()
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Description: "Premium noise-cancelling wireless headphones with 30-hour battery life",
			Price:       decimal.NewFromFloat(299.99),
			Category:    "Electronics",
			Image:       "/wireless-headphones.png",
			Stock:       50,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Description: "Fitness tracking smartwatch with heart rate monitor and GPS",
			Price:       decimal.NewFromFloat(399.99),
			Category:    "Electronics",
			Image:       "/smartwatch-lifestyle.png",
			Stock:       30,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Laptop Backpack",
			Description: "Durable water-resistant backpack with laptop compartment",
			Price:       decimal.NewFromFloat(79.99),
			Category:    "Accessories",
			Image:       "/laptop-backpack.png",
			Stock:       100,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Name:        "Bluetooth Speaker",
			Description: "Portable waterproof speaker with 360-degree sound",
			Price:       decimal.NewFromFloat(149.99),
			Category:    "Electronics",
			Image:       "/bluetooth-speaker.jpg",
			Stock:       75,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "5",
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking",
			Price:       decimal.NewFromFloat(49.99),
			Category:    "Accessories",
			Image:       "/wireless-mouse.png",
			Stock:       150,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          "6",
			Name:        "USB-C Hub",
			Description: "7-in-1 USB-C hub with HDMI, USB 3.0, and SD card reader",
			Price:       decimal.NewFromFloat(59.99),
			Category:    "Accessories",
			Image:       "/usb-c-hub.jpg",
			Stock:       80,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          "7",
			Name:        "Mechanical Keyboard",
			Description: "RGB backlit mechanical keyboard with blue switches",
			Price:       decimal.NewFromFloat(129.99),
			Category:    "Accessories",
			Image:       "/mechanical-keyboard.png",
			Stock:       45,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "8",
			Name:        "Webcam HD",
			Description: "1080p HD webcam with built-in microphone",
			Price:       decimal.NewFromFloat(89.99),
			Category:    "Electronics",
			Image:       "/hd-webcam.jpg",
			Stock:       60,
			Featured:    false,
			CreatedAt:   now,
		},
	}
}

// InstallmentPackages returns the fixed set of selectable payment plans.
func InstallmentPackages() []domain.InstallmentPackage {
	return []domain.InstallmentPackage{
		{Months: 3, Label: "3 Months", InterestRate: decimal.Zero},
		{Months: 6, Label: "6 Months", InterestRate: decimal.NewFromInt(5)},
		{Months: 12, Label: "12 Months", InterestRate: decimal.NewFromInt(10)},
	}
}

// PackageByMonths looks up a seed installment package by duration.
func PackageByMonths(months int) (domain.InstallmentPackage, bool) {
	for _, pkg := range InstallmentPackages() {
		if pkg.Months == months {
			return pkg, true
		}
	}
	return domain.InstallmentPackage{}, false
}

// BlogPosts returns the seed editorial content.
func BlogPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{
			ID:          "1",
			Title:       "The Future of E-commerce: Flexible Payment Options",
			Slug:        "future-of-ecommerce-flexible-payments",
			Excerpt:     "Discover how installment payments are revolutionizing online shopping and making premium products accessible to everyone.",
			Content:     "Full blog content here...",
			Image:       "/ecommerce-future.jpg",
			Author:      "Sarah Johnson",
			PublishedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Category:    "E-commerce",
		},
		{
			ID:          "2",
			Title:       "5 Tips for Smart Online Shopping",
			Slug:        "smart-online-shopping-tips",
			Excerpt:     "Learn how to make the most of your online shopping experience with these expert tips.",
			Content:     "Full blog content here...",
			Image:       "/online-shopping-tips.jpg",
			Author:      "Michael Chen",
			PublishedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			Category:    "Shopping Tips",
		},
		{
			ID:          "3",
			Title:       "Understanding Installment Plans: A Complete Guide",
			Slug:        "understanding-installment-plans",
			Excerpt:     "Everything you need to know about choosing the right installment plan for your purchases.",
			Content:     "Full blog content here...",
			Image:       "/installment-payment-guide.jpg",
			Author:      "Emily Rodriguez",
			PublishedAt: time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			Category:    "Finance",
		},
	}
}
