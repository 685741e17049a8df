package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The catalog is reseeded from static data on every
// start and is never persisted.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductFilter narrows and orders catalog listings.
type ProductFilter struct {
	Category string
	Featured *bool
	Search   string
	SortBy   string // price_asc, price_desc, name
}
