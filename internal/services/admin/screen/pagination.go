package screen

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is used when no page size or an unsupported one is given.
const DefaultPageSize = 10

var pageSizeOptions = []int{5, 10, 25}

// PageSizeOptions returns the selectable page sizes in display order.
func PageSizeOptions() []int {
	return append([]int(nil), pageSizeOptions...)
}

// Pagination is the page index and page size of the user table.
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination normalizes page and size: negative pages become 0 and
// unsupported sizes become DefaultPageSize.
func NewPagination(page, size int) Pagination {
	if page < 0 {
		page = 0
	}
	if !isPageSizeOption(size) {
		size = DefaultPageSize
	}
	return Pagination{Page: page, PageSize: size}
}

// ParsePagination reads the page and page_size query parameters.
func ParsePagination(values url.Values) Pagination {
	return NewPagination(parseInt(values.Get("page")), parseInt(values.Get("page_size")))
}

// Skip is the number of accounts before the current page.
func (p Pagination) Skip() int {
	p = p.normalized()
	return p.Page * p.PageSize
}

// Limit is the number of accounts requested for the current page.
func (p Pagination) Limit() int {
	return p.normalized().PageSize
}

// WithPage moves to page, keeping the page size.
func (p Pagination) WithPage(page int) Pagination {
	return NewPagination(page, p.PageSize)
}

// WithPageSize changes the page size, keeping the page index.
func (p Pagination) WithPageSize(size int) Pagination {
	return NewPagination(p.Page, size)
}

// HasPrevious reports whether a page precedes the current one.
func (p Pagination) HasPrevious() bool {
	return p.normalized().Page > 0
}

// HasNext reports whether accounts remain after the current page.
func (p Pagination) HasNext(total int) bool {
	return p.Skip()+p.Limit() < total
}

// Range returns the 1-based first and last row numbers shown for total
// accounts. Both are 0 when the page is empty.
func (p Pagination) Range(total int) (from, to int) {
	skip := p.Skip()
	if total <= 0 || skip >= total {
		return 0, 0
	}
	to = skip + p.Limit()
	if to > total {
		to = total
	}
	return skip + 1, to
}

// Query encodes the pagination as query parameters.
func (p Pagination) Query() url.Values {
	p = p.normalized()
	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("page_size", strconv.Itoa(p.PageSize))
	return values
}

func (p Pagination) normalized() Pagination {
	return NewPagination(p.Page, p.PageSize)
}

func isPageSizeOption(size int) bool {
	for _, option := range pageSizeOptions {
		if option == size {
			return true
		}
	}
	return false
}

func parseInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
