package catalog

import (
	"time"

	"github.com/sundrymarket/storefront/pkg/enums"
)

// Product is a raw catalog entry as supplied by the external feed. Prices are
// integers in the smallest currency unit.
type Product struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	CategoryID     string              `json:"category_id,omitempty"`
	RetailPrice    int64               `json:"retail_price"`
	DiscountPrice  *int64              `json:"discount_price,omitempty"`
	DiscountActive bool                `json:"discount_active"`
	Images         []string            `json:"images,omitempty"`
	Stock          int                 `json:"stock"`
	Rating         float64             `json:"rating"`
	Sizes          []string            `json:"sizes,omitempty"`
	Status         enums.ProductStatus `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

// Category is a raw catalog category. SortOrder defines display order; ties
// retain feed order.
type Category struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Description string               `json:"description,omitempty"`
	Image       string               `json:"image,omitempty"`
	Status      enums.CategoryStatus `json:"status"`
	SortOrder   int                  `json:"sort_order"`
}

// Snapshot is one consistent view of the catalog feed.
type Snapshot struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}
