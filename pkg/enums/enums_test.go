package enums

import "testing"

func TestParseSortKeyDefaultsWhenEmpty(t *testing.T) {
	t.Parallel()

	key, err := ParseSortKey("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != SortKeyDefault {
		t.Fatalf("expected default sort key, got %q", key)
	}

	if _, err := ParseSortKey("cheapest"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestStockBucketMatches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bucket StockBucket
		stock  int
		want   bool
	}{
		{StockBucketAll, 0, true},
		{StockBucketInStock, 5, false},
		{StockBucketInStock, 6, true},
		{StockBucketLowStock, 0, false},
		{StockBucketLowStock, 1, true},
		{StockBucketLowStock, 5, true},
		{StockBucketLowStock, 6, false},
	}
	for _, tc := range cases {
		if got := tc.bucket.Matches(tc.stock); got != tc.want {
			t.Fatalf("%s.Matches(%d) = %v, want %v", tc.bucket, tc.stock, got, tc.want)
		}
	}
}

func TestParseIconKeyRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseIconKey("sparkles"); err == nil {
		t.Fatal("expected unknown icon key to be rejected")
	}
	key, err := ParseIconKey("delivery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !key.IsValid() {
		t.Fatalf("expected %q to be valid", key)
	}
}
