package pagination

const (
	// DefaultPageSize is the storefront grid size used when none is requested.
	DefaultPageSize = 6
	// MaxPageSize caps how many items a single page may hold.
	MaxPageSize = 100
)

// Window describes the bounded slice of a sequence shown for one page.
// Start and End are half-open indexes into the sequence.
type Window struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Start      int `json:"-"`
	End        int `json:"-"`
}

// NormalizePageSize enforces the default and maximum page sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages returns ceil(count/size), or 0 for an empty sequence.
func TotalPages(count, size int) int {
	if count <= 0 {
		return 0
	}
	size = NormalizePageSize(size)
	return (count + size - 1) / size
}

// ClampPage keeps page within [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	last := max(totalPages, 1)
	if page > last {
		return last
	}
	return page
}

// Paginate computes the window for a sequence of count items.
func Paginate(count, page, size int) Window {
	size = NormalizePageSize(size)
	if count < 0 {
		count = 0
	}
	totalPages := TotalPages(count, size)
	page = ClampPage(page, totalPages)

	start := min((page-1)*size, count)
	end := min(start+size, count)

	return Window{
		Page:       page,
		PageSize:   size,
		Total:      count,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// Slice returns the items on the requested page together with its window.
func Slice[T any](items []T, page, size int) ([]T, Window) {
	w := Paginate(len(items), page, size)
	return items[w.Start:w.End], w
}
