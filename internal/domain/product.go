package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory is the fixed set of catalog sections.
type ProductCategory string

const (
	CategoryLuggage           ProductCategory = "luggage"
	CategoryBags              ProductCategory = "bags"
	CategoryTravelAccessories ProductCategory = "travel_accessories"
	CategoryDigitalNomad      ProductCategory = "digital_nomad"
)

// Categories lists every category in display order.
var Categories = []ProductCategory{
	CategoryLuggage,
	CategoryBags,
	CategoryTravelAccessories,
	CategoryDigitalNomad,
}

func (c ProductCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a product in the catalog
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    ProductCategory `json:"category" db:"category"`
	ImageURL    string          `json:"image_url" db:"image_url"`
	Stock       int             `json:"stock" db:"stock"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// CategorySummary is a category with the number of products filed under it.
type CategorySummary struct {
	Category     ProductCategory `json:"category"`
	ProductCount int             `json:"product_count"`
}
