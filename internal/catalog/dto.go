package catalog

import "time"

// DisplayProduct is the display-ready projection of a Product. EffectivePrice
// never exceeds OriginalPrice and DiscountPercent stays within [0,100].
type DisplayProduct struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	EffectivePrice  int64     `json:"effective_price"`
	OriginalPrice   int64     `json:"original_price"`
	CategoryName    string    `json:"category_name,omitempty"`
	DiscountPercent int       `json:"discount_percent"`
	IsNew           bool      `json:"is_new"`
	Stock           int       `json:"stock"`
	Rating          float64   `json:"rating"`
	Image           string    `json:"image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// PageResult wraps one page of projected products plus display bounds.
type PageResult struct {
	Items       []DisplayProduct `json:"items"`
	Page        int              `json:"page"`
	TotalPages  int              `json:"total_pages"`
	TotalItems  int              `json:"total_items"`
	StartIndex  int              `json:"start_index"`
	EndIndex    int              `json:"end_index"`
	HasNextPage bool             `json:"has_next_page"`
	HasPrevPage bool             `json:"has_prev_page"`
}

// FeedResult wraps a lazy-reveal window of projected products.
type FeedResult struct {
	Items       []DisplayProduct `json:"items"`
	LoadedCount int              `json:"loaded_count"`
	TotalItems  int              `json:"total_items"`
	HasMore     bool             `json:"has_more"`
}
