// Package pagination holds the page arithmetic shared by every listing
// endpoint: listings are sliced as rows [(page-1)*size, page*size) of the
// filtered result set, ordered by primary key ascending.
package pagination

import "errors"

// DefaultPageSize matches the page size the listing views were built around.
const DefaultPageSize = 6

var (
	ErrInvalidPage     = errors.New("page must be greater than zero")
	ErrInvalidPageSize = errors.New("page size must be greater than zero")
)

// Page is a validated (page, pageSize) pair.
type Page struct {
	Number int
	Size   int
}

// New validates the pair. A zero number or size falls back to the defaults
// (first page, DefaultPageSize); negative values are rejected.
func New(number, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 0 {
		return Page{}, ErrInvalidPage
	}
	if size < 0 {
		return Page{}, ErrInvalidPageSize
	}
	return Page{Number: number, Size: size}, nil
}

// Offset is the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages is ceil(totalCount / size).
func (p Page) TotalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + p.Size - 1) / p.Size
}

// Slice returns the in-memory page of items, empty past the last page.
func Slice[T any](items []T, p Page) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
