package queries

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinSearchLength = 2
	MaxSearchResult = 50
)

type Pagination struct {
	Page int
	Size int
}

// NewPagination falls back to page 1 and the default size for out-of-range input.
func NewPagination(page, size int) Pagination {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Pagination{Page: page, Size: size}
}

// Offset saturates at the largest bigint so huge pages read past the end
// instead of overflowing.
func (p Pagination) Offset() uint64 {
	if p.Page <= 1 || p.Size <= 0 {
		return 0
	}
	skip := uint64(p.Page - 1)
	if skip > math.MaxInt64/uint64(p.Size) {
		return math.MaxInt64
	}
	return skip * uint64(p.Size)
}

func (p Pagination) Limit() uint64 {
	return uint64(p.Size)
}

type PageResult[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

func NewPageResult[T any](items []T, total int64, p Pagination) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: TotalPages(total, p.Size),
	}
}

func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
