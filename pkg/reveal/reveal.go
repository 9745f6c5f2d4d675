package reveal

import (
	"sync"
	"time"
)

// Options configures a lazy-reveal feed.
type Options struct {
	// InitialBatch is the visible prefix length at construction and after
	// Reset.
	InitialBatch int
	// BatchSize is how much the prefix grows per LoadMore.
	BatchSize int
	// Delay postpones applying a LoadMore. Purely cosmetic smoothing; zero
	// applies growth immediately.
	Delay time.Duration
}

// DefaultBatch is used when a batch option is not positive.
const DefaultBatch = 12

func (o Options) normalized() Options {
	if o.InitialBatch <= 0 {
		o.InitialBatch = DefaultBatch
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatch
	}
	return o
}

// Feed maintains an incrementally growing visible prefix of an ordered item
// list. At most one batch growth is in flight at a time: LoadMore calls
// arriving while a delayed growth is pending are ignored.
type Feed[T any] struct {
	mu      sync.Mutex
	items   []T
	loaded  int
	loading bool
	opts    Options
}

// NewFeed builds a feed showing the initial batch.
func NewFeed[T any](items []T, opts Options) *Feed[T] {
	opts = opts.normalized()
	f := &Feed[T]{items: items, opts: opts}
	f.loaded = min(opts.InitialBatch, len(items))
	return f
}

// SetItems replaces the underlying list. If the list shrank below the loaded
// count, the visible prefix clamps down to min(initialBatch, totalItems).
func (f *Feed[T]) SetItems(items []T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
	f.clampLocked()
}

// VisibleItems returns the current visible prefix.
func (f *Feed[T]) VisibleItems() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clampLocked()
	return f.items[:f.loaded]
}

// LoadedCount returns the visible prefix length.
func (f *Feed[T]) LoadedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clampLocked()
	return f.loaded
}

// HasMore reports whether hidden items remain.
func (f *Feed[T]) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clampLocked()
	return f.loaded < len(f.items)
}

// IsLoading reports whether a delayed batch growth is pending.
func (f *Feed[T]) IsLoading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// LoadMore grows the visible prefix by one batch, clamped to the list length.
// It reports whether the call was accepted; calls during an in-flight growth
// or with nothing left to reveal are ignored.
func (f *Feed[T]) LoadMore() bool {
	f.mu.Lock()
	f.clampLocked()
	if f.loading || f.loaded >= len(f.items) {
		f.mu.Unlock()
		return false
	}
	if f.opts.Delay <= 0 {
		f.growLocked()
		f.mu.Unlock()
		return true
	}
	f.loading = true
	f.mu.Unlock()

	time.AfterFunc(f.opts.Delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.clampLocked()
		f.growLocked()
		f.loading = false
	})
	return true
}

// Reset shrinks the visible prefix back to the initial batch.
func (f *Feed[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = min(f.opts.InitialBatch, len(f.items))
}

func (f *Feed[T]) growLocked() {
	f.loaded = min(f.loaded+f.opts.BatchSize, len(f.items))
}

func (f *Feed[T]) clampLocked() {
	if f.loaded > len(f.items) {
		f.loaded = min(f.opts.InitialBatch, len(f.items))
	}
}
