package catalog

import "github.com/sundrymarket/storefront/pkg/enums"

// CategoryAll disables category filtering.
const CategoryAll = "all"

// FilterConfig describes the supported filter knobs for the browse surface.
// Range bounds are inclusive; nil means unbounded. The pipeline does not
// re-validate bound ordering, that is the caller's responsibility.
type FilterConfig struct {
	Search       string            `json:"q,omitempty"`
	CategoryID   string            `json:"category,omitempty"`
	DiscountOnly bool              `json:"discount_only,omitempty"`
	NewOnly      bool              `json:"new_only,omitempty"`
	PriceMin     *int64            `json:"price_min,omitempty"`
	PriceMax     *int64            `json:"price_max,omitempty"`
	DiscountMin  *int              `json:"discount_min,omitempty"`
	DiscountMax  *int              `json:"discount_max,omitempty"`
	RatingMin    *float64          `json:"rating_min,omitempty"`
	StockBucket  enums.StockBucket `json:"stock,omitempty"`
	Size         string            `json:"size,omitempty"`
	SortKey      enums.SortKey     `json:"sort,omitempty"`
}

func (c FilterConfig) filtersCategory() bool {
	return c.CategoryID != "" && c.CategoryID != CategoryAll
}
