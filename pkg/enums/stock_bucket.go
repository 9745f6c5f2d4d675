package enums

import "fmt"

// StockBucket groups products by how much inventory remains.
type StockBucket string

const (
	StockBucketAll      StockBucket = "all"
	StockBucketInStock  StockBucket = "inStock"
	StockBucketLowStock StockBucket = "lowStock"
)

var validStockBuckets = []StockBucket{
	StockBucketAll,
	StockBucketInStock,
	StockBucketLowStock,
}

// String implements fmt.Stringer.
func (b StockBucket) String() string {
	return string(b)
}

// IsValid reports whether the value is a known StockBucket.
func (b StockBucket) IsValid() bool {
	for _, candidate := range validStockBuckets {
		if candidate == b {
			return true
		}
	}
	return false
}

// Matches reports whether a stock level falls inside the bucket. The in-stock
// bucket requires more than five units; low stock is one through five.
func (b StockBucket) Matches(stock int) bool {
	switch b {
	case StockBucketInStock:
		return stock > 5
	case StockBucketLowStock:
		return stock >= 1 && stock <= 5
	default:
		return true
	}
}

// ParseStockBucket converts raw input into a StockBucket. Empty input means
// no stock filtering.
func ParseStockBucket(value string) (StockBucket, error) {
	if value == "" {
		return StockBucketAll, nil
	}
	for _, candidate := range validStockBuckets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock bucket %q", value)
}
