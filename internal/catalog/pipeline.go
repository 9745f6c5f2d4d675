package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sundrymarket/storefront/pkg/enums"
)

// newWindow is how long after creation a product counts as new.
const newWindow = 7 * 24 * time.Hour

// Project filters, derives, and sorts the raw product list into display
// order. It is a pure function of its inputs apart from the wall clock used
// for newness.
func Project(products []Product, categories []Category, cfg FilterConfig) []DisplayProduct {
	return projectAt(products, categories, cfg, time.Now())
}

func projectAt(products []Product, categories []Category, cfg FilterConfig, now time.Time) []DisplayProduct {
	names := categoryNames(categories)
	search := strings.ToLower(strings.TrimSpace(cfg.Search))

	result := make([]DisplayProduct, 0, len(products))
	for _, p := range products {
		if p.Status != enums.ProductStatusActive {
			continue
		}
		if cfg.filtersCategory() && p.CategoryID != cfg.CategoryID {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}

		view := derive(p, names, now)

		if cfg.DiscountOnly && view.DiscountPercent == 0 {
			continue
		}
		if cfg.NewOnly && !view.IsNew {
			continue
		}
		if cfg.PriceMin != nil && view.EffectivePrice < *cfg.PriceMin {
			continue
		}
		if cfg.PriceMax != nil && view.EffectivePrice > *cfg.PriceMax {
			continue
		}
		if cfg.DiscountMin != nil && view.DiscountPercent < *cfg.DiscountMin {
			continue
		}
		if cfg.DiscountMax != nil && view.DiscountPercent > *cfg.DiscountMax {
			continue
		}
		if cfg.RatingMin != nil && view.Rating < *cfg.RatingMin {
			continue
		}
		if !cfg.StockBucket.Matches(p.Stock) {
			continue
		}
		if cfg.Size != "" && !hasSize(p, cfg.Size) {
			continue
		}

		result = append(result, view)
	}

	applySort(result, cfg.SortKey)
	return result
}

func derive(p Product, names map[string]string, now time.Time) DisplayProduct {
	view := DisplayProduct{
		ID:             p.ID,
		Name:           p.Title,
		EffectivePrice: p.RetailPrice,
		OriginalPrice:  p.RetailPrice,
		CategoryName:   names[p.CategoryID],
		IsNew:          p.CreatedAt.After(now.Add(-newWindow)),
		Stock:          p.Stock,
		Rating:         p.Rating,
		CreatedAt:      p.CreatedAt,
	}
	if len(p.Images) > 0 {
		view.Image = p.Images[0]
	}
	// A discount price at or above retail is not a real discount; ignoring it
	// keeps effective price bounded by the original price.
	if p.DiscountActive && p.DiscountPrice != nil && *p.DiscountPrice < p.RetailPrice {
		view.EffectivePrice = *p.DiscountPrice
		view.DiscountPercent = discountPercent(p.RetailPrice, *p.DiscountPrice)
	}
	return view
}

// discountPercent computes round((1 - discount/retail) * 100) with half away
// from zero rounding, clamped into [0,100].
func discountPercent(retail, discount int64) int {
	if retail <= 0 || discount < 0 {
		return 0
	}
	ratio := decimal.NewFromInt(discount).Div(decimal.NewFromInt(retail))
	pct := decimal.NewFromInt(1).Sub(ratio).Mul(decimal.NewFromInt(100)).Round(0)
	value := int(pct.IntPart())
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func matchesSearch(p Product, loweredSearch string) bool {
	if strings.Contains(strings.ToLower(p.Title), loweredSearch) {
		return true
	}
	return p.Description != "" && strings.Contains(strings.ToLower(p.Description), loweredSearch)
}

func hasSize(p Product, size string) bool {
	for _, candidate := range p.Sizes {
		if candidate == size {
			return true
		}
	}
	return false
}

func applySort(items []DisplayProduct, key enums.SortKey) {
	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice < items[j].EffectivePrice
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice > items[j].EffectivePrice
		})
	case enums.SortKeyNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case enums.SortKeyDiscount:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DiscountPercent > items[j].DiscountPercent
		})
	case enums.SortKeyRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	}
}

func categoryNames(categories []Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

// ActiveCategories returns the active categories in display order: ascending
// sort order with ties retaining input order.
func ActiveCategories(categories []Category) []Category {
	active := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Status == enums.CategoryStatusActive {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].SortOrder < active[j].SortOrder
	})
	return active
}
