package domain

import "math"

// Pagination bounds enforced at the repository boundary.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// BeneficiaryFilter holds the optional filters and pagination parameters for
// beneficiary list queries. Zero values mean "no filter".
type BeneficiaryFilter struct {
	Name               string
	DocumentNumber     string
	IdentityDocumentID int
	Page               int
	PageSize           int
}

// Normalized returns a copy of the filter with pagination coerced into
// bounds: page <= 0 becomes 1, and a page size outside (0, 200] becomes 20.
func (f BeneficiaryFilter) Normalized() BeneficiaryFilter {
	if f.Page <= 0 {
		f.Page = DefaultPage
	}
	if f.PageSize <= 0 || f.PageSize > MaxPageSize {
		f.PageSize = DefaultPageSize
	}
	return f
}

// PageResult is one page of items plus paging metadata.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPageResult creates a PageResult with TotalPages computed as
// ceil(totalCount / pageSize). A nil items slice becomes an empty one so the
// JSON form is always an array.
func NewPageResult[T any](items []T, totalCount int64, page, pageSize int) *PageResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	if items == nil {
		items = []T{}
	}

	return &PageResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// MapPage projects a page of T into a page of U, preserving the paging
// metadata unchanged.
func MapPage[T, U any](p *PageResult[T], fn func(T) U) *PageResult[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return &PageResult[U]{
		Items:      items,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
