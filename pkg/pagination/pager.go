package pagination

// DefaultPerPage is the standard page size when a per-page value is not
// provided.
const DefaultPerPage = 12

// MaxPerPage caps how many items a single page can request.
const MaxPerPage = 100

// NormalizePerPage enforces the configured default and maximum page sizes.
func NormalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// Pager slices an ordered item list into fixed-size pages. The current page
// is re-clamped on every read, so shrinking the underlying list can never
// leave the pager on an out-of-range page.
type Pager[T any] struct {
	items   []T
	perPage int
	current int
}

// NewPager builds a pager positioned on the first page.
func NewPager[T any](items []T, perPage int) *Pager[T] {
	return &Pager[T]{
		items:   items,
		perPage: NormalizePerPage(perPage),
		current: 1,
	}
}

// SetItems replaces the underlying list. The current page is corrected on the
// next read if the new list is shorter.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
}

// TotalItems returns the length of the underlying list.
func (p *Pager[T]) TotalItems() int {
	return len(p.items)
}

// PerPage returns the fixed page size.
func (p *Pager[T]) PerPage() int {
	return p.perPage
}

// TotalPages returns ceil(totalItems / perPage); 0 when the list is empty.
func (p *Pager[T]) TotalPages() int {
	if len(p.items) == 0 {
		return 0
	}
	return (len(p.items) + p.perPage - 1) / p.perPage
}

// CurrentPage returns the clamped 1-indexed page. An empty list still reads
// as page 1.
func (p *Pager[T]) CurrentPage() int {
	p.clamp()
	return p.current
}

// GoToPage moves to page n, clamped into [1, max(1, totalPages)].
func (p *Pager[T]) GoToPage(n int) {
	p.current = n
	p.clamp()
}

// NextPage advances one page when one exists.
func (p *Pager[T]) NextPage() {
	p.GoToPage(p.CurrentPage() + 1)
}

// PrevPage steps back one page when one exists.
func (p *Pager[T]) PrevPage() {
	p.GoToPage(p.CurrentPage() - 1)
}

// HasNextPage reports whether a later page exists.
func (p *Pager[T]) HasNextPage() bool {
	return p.CurrentPage() < p.TotalPages()
}

// HasPrevPage reports whether an earlier page exists.
func (p *Pager[T]) HasPrevPage() bool {
	return p.CurrentPage() > 1
}

// PageItems returns the current page slice.
func (p *Pager[T]) PageItems() []T {
	current := p.CurrentPage()
	start := (current - 1) * p.perPage
	if start >= len(p.items) {
		return nil
	}
	end := start + p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// StartIndex returns the 1-indexed position of the first item on the current
// page, or 0 when the list is empty.
func (p *Pager[T]) StartIndex() int {
	if len(p.items) == 0 {
		return 0
	}
	return (p.CurrentPage()-1)*p.perPage + 1
}

// EndIndex returns the 1-indexed position of the last item on the current
// page, or 0 when the list is empty.
func (p *Pager[T]) EndIndex() int {
	if len(p.items) == 0 {
		return 0
	}
	end := p.CurrentPage() * p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return end
}

func (p *Pager[T]) clamp() {
	max := p.TotalPages()
	if max < 1 {
		max = 1
	}
	if p.current > max {
		p.current = max
	}
	if p.current < 1 {
		p.current = 1
	}
}
