package pagination

import "fmt"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds pagination parameters for a listing.
type Params struct {
	Limit  int
	Offset int
}

// FromPage builds Params for a 1-based page number. Non-positive pages map to
// the first page and the page size is clamped to [1, MaxLimit].
func FromPage(page, size int) Params {
	if size <= 0 {
		size = DefaultLimit
	}
	if size > MaxLimit {
		size = MaxLimit
	}
	if page < 1 {
		page = 1
	}
	return Params{Limit: size, Offset: (page - 1) * size}
}

// Page returns the 1-based page number the offset falls on.
func (p Params) Page() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

// Window returns the half-open range [start, end) of a listing with total
// entries that this page covers.
func (p Params) Window(total int) (start, end int) {
	start = p.Offset
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset+p.Limit < total
}

// HasPrevious returns true if there are results before the current page.
func (p Params) HasPrevious() bool {
	return p.Offset > 0
}

// NextOffset returns the offset for the next page.
func (p Params) NextOffset() int {
	return p.Offset + p.Limit
}

// PreviousOffset returns the offset for the previous page.
// Returns 0 if the result would be negative.
func (p Params) PreviousOffset() int {
	prev := p.Offset - p.Limit
	if prev < 0 {
		return 0
	}
	return prev
}

// Footer summarises the window and points at its neighbours, e.g.
// "Showing 21-40 of 57 (page 2), previous page 1, next page 3".
func (p Params) Footer(total int) string {
	start, end := p.Window(total)
	if total == 0 || start == end {
		return fmt.Sprintf("Showing 0 of %d", total)
	}
	footer := fmt.Sprintf("Showing %d-%d of %d (page %d)", start+1, end, total, p.Page())
	if p.HasPrevious() {
		prev := Params{Limit: p.Limit, Offset: p.PreviousOffset()}
		footer += fmt.Sprintf(", previous page %d", prev.Page())
	}
	if p.HasNext(total) {
		next := Params{Limit: p.Limit, Offset: p.NextOffset()}
		footer += fmt.Sprintf(", next page %d", next.Page())
	}
	return footer
}

// Slice returns the part of items covered by the page.
func Slice[T any](items []T, p Params) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}
