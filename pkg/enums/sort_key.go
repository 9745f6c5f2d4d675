package enums

import "fmt"

// SortKey selects the ordering applied to a projected product list.
type SortKey string

const (
	SortKeyDefault   SortKey = "default"
	SortKeyPriceAsc  SortKey = "price-asc"
	SortKeyPriceDesc SortKey = "price-desc"
	SortKeyNewest    SortKey = "newest"
	SortKeyDiscount  SortKey = "discount"
	SortKeyRating    SortKey = "rating"
)

var validSortKeys = []SortKey{
	SortKeyDefault,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyNewest,
	SortKeyDiscount,
	SortKeyRating,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input falls back to
// the default ordering.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyDefault, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
