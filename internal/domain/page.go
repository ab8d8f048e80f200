package domain

import "math"

// Pagination defaults and bounds applied by NewPaginationParams.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (Page-1)*Limit within int32, so Offset cannot overflow
	// even where int is 32 bits. Pages past the data return no rows.
	MaxPage = math.MaxInt32/MaxLimit + 1
)

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil or non-positive values fall back to the defaults. Limit is capped at
// MaxLimit and Page at MaxPage, so Offset never overflows.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: DefaultPage, Limit: DefaultLimit}
	if page != nil && *page >= 1 {
		p.Page = min(*page, MaxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
