package reveal

import (
	"testing"
	"time"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestFeedGrowsByBatchesAndClampsAtTotal(t *testing.T) {
	t.Parallel()

	feed := NewFeed(intRange(50), Options{InitialBatch: 12, BatchSize: 12})

	if got := feed.LoadedCount(); got != 12 {
		t.Fatalf("expected initial batch 12, got %d", got)
	}

	if !feed.LoadMore() {
		t.Fatal("expected first LoadMore to be accepted")
	}
	if got := feed.LoadedCount(); got != 24 {
		t.Fatalf("expected 24 after one growth, got %d", got)
	}

	feed.LoadMore()
	feed.LoadMore()
	feed.LoadMore()
	if got := feed.LoadedCount(); got != 50 {
		t.Fatalf("expected clamp at 50, got %d", got)
	}
	if feed.HasMore() {
		t.Fatal("expected exhaustion at total items")
	}
	if feed.LoadMore() {
		t.Fatal("expected LoadMore to be ignored when exhausted")
	}
}

func TestFeedVisiblePrefixOrder(t *testing.T) {
	t.Parallel()

	feed := NewFeed(intRange(10), Options{InitialBatch: 4, BatchSize: 4})

	visible := feed.VisibleItems()
	if len(visible) != 4 {
		t.Fatalf("expected 4 visible, got %d", len(visible))
	}
	for i, v := range visible {
		if v != i+1 {
			t.Fatalf("expected prefix order, got %v", visible)
		}
	}
}

func TestFeedResetAndShrinkClamp(t *testing.T) {
	t.Parallel()

	feed := NewFeed(intRange(50), Options{InitialBatch: 12, BatchSize: 12})
	feed.LoadMore()
	feed.LoadMore()
	if got := feed.LoadedCount(); got != 36 {
		t.Fatalf("expected 36, got %d", got)
	}

	feed.Reset()
	if got := feed.LoadedCount(); got != 12 {
		t.Fatalf("expected reset to initial batch, got %d", got)
	}

	feed.LoadMore()
	feed.SetItems(intRange(8))
	if got := feed.LoadedCount(); got != 8 {
		t.Fatalf("expected shrink clamp to min(initial, total)=8, got %d", got)
	}

	feed.SetItems(intRange(100))
	if got := feed.LoadedCount(); got != 8 {
		t.Fatalf("growing the list must not change the prefix, got %d", got)
	}
}

func TestFeedDelayedLoadIgnoresConcurrentCalls(t *testing.T) {
	t.Parallel()

	feed := NewFeed(intRange(50), Options{InitialBatch: 10, BatchSize: 10, Delay: 20 * time.Millisecond})

	if !feed.LoadMore() {
		t.Fatal("expected first LoadMore to be accepted")
	}
	if !feed.IsLoading() {
		t.Fatal("expected in-flight load")
	}
	if feed.LoadMore() {
		t.Fatal("expected second LoadMore to be ignored while loading")
	}

	deadline := time.Now().Add(time.Second)
	for feed.IsLoading() {
		if time.Now().After(deadline) {
			t.Fatal("load never settled")
		}
		time.Sleep(time.Millisecond)
	}

	if got := feed.LoadedCount(); got != 20 {
		t.Fatalf("expected exactly one batch applied, got %d", got)
	}
}

func TestFeedSmallListStartsFullyVisible(t *testing.T) {
	t.Parallel()

	feed := NewFeed(intRange(3), Options{InitialBatch: 12, BatchSize: 12})
	if got := feed.LoadedCount(); got != 3 {
		t.Fatalf("expected 3 visible, got %d", got)
	}
	if feed.HasMore() {
		t.Fatal("expected no more items")
	}
}
