package shared

import "math"

// DefaultPageSize is applied when a listing request carries no page size.
const DefaultPageSize = 20

// Pagination contains metadata for paginated listings. Pages are zero-based.
type Pagination struct {
	PageIndex  int
	PageSize   int
	TotalCount int
	TotalPages int
}

// NewPagination computes pagination metadata.
func NewPagination(pageIndex, pageSize, total int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return Pagination{PageIndex: pageIndex, PageSize: pageSize, TotalCount: total, TotalPages: totalPages}
}

// Bounds returns the [start, end) slice offsets for the page over a
// collection of the given total size. An out-of-range page yields an
// empty window rather than an error.
func (p Pagination) Bounds() (int, int) {
	start := p.PageIndex * p.PageSize
	if start >= p.TotalCount {
		return 0, 0
	}
	end := start + p.PageSize
	if end > p.TotalCount {
		end = p.TotalCount
	}
	return start, end
}
