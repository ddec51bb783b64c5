package pagination

// Default paging values applied when the caller does not provide any.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// ColumnOrder describes one requested sort column and direction.
type ColumnOrder struct {
	ID   string `json:"id"`
	Desc bool   `json:"desc"`
}

// Filter carries the paging parameters of a request.
// PageSize must be > 0; the envelope arithmetic is undefined otherwise.
type Filter struct {
	PageNumber int           `json:"page_number"`
	PageSize   int           `json:"page_size"`
	Sorting    []ColumnOrder `json:"sorting,omitempty"`
}

// NewFilter returns a filter with the default page number and size.
func NewFilter() Filter {
	return Filter{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}
}

// Offset returns the number of rows to skip for the current page.
func (f Filter) Offset() int {
	return (f.PageNumber - 1) * f.PageSize
}

// Response is the paginated envelope returned by list and report endpoints.
type Response[T any] struct {
	Data            []T   `json:"data"`
	CurrentPage     int   `json:"current_page"`
	PageSize        int   `json:"page_size"`
	TotalCount      int64 `json:"total_count"`
	TotalPages      int   `json:"total_pages"`
	HasPreviousPage bool  `json:"has_previous_page"`
	HasNextPage     bool  `json:"has_next_page"`
}

// NewResponse builds the envelope for one page of an already-sorted result set.
func NewResponse[T any](data []T, totalCount int64, page, pageSize int) Response[T] {
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return Response[T]{
		Data:            data,
		CurrentPage:     page,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}
