package pagination

import "math"

const (
	// DefaultPage is the first page
	DefaultPage = 1
	// DefaultLimit is the page size used when none is requested
	DefaultLimit = 25
)

// Request holds 1-based page parameters
type Request struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// NewRequest creates page parameters with defaults applied
func NewRequest(page, limit int) Request {
	return Request{Page: page, Limit: limit}.Normalize()
}

// Normalize replaces values below 1 with the defaults
func (r Request) Normalize() Request {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.Limit < 1 {
		r.Limit = DefaultLimit
	}
	return r
}

// Offset returns the zero-based index of the first element on the page.
// It saturates at math.MaxInt instead of overflowing.
func (r Request) Offset() int {
	r = r.Normalize()
	if r.Page-1 > math.MaxInt/r.Limit {
		return math.MaxInt
	}
	return (r.Page - 1) * r.Limit
}

// Result is the search envelope returned to callers
type Result[T any] struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Data  []T `json:"data"`
}

// Paginate windows an already ordered collection. Total is the size of the
// whole collection. A page past the end yields empty Data, not an error.
func Paginate[T any](items []T, req Request) Result[T] {
	req = req.Normalize()

	data := []T{}
	if begin := req.Offset(); begin < len(items) {
		end := begin + min(req.Limit, len(items)-begin)
		data = append(data, items[begin:end]...)
	}

	return Result[T]{
		Total: len(items),
		Page:  req.Page,
		Limit: req.Limit,
		Data:  data,
	}
}
