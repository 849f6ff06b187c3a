package paginator

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 15
	MaxLimit     = 100
	// MaxPage keeps Page*MaxLimit far inside int64.
	MaxPage = 1_000_000
)

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int   `json:"page" form:"page"`
	Limit int64 `json:"limit" form:"limit"`
}

// Adjust normalizes the pagination parameters to valid values.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	} else if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset is the number of rows to skip for the current page.
// Page and Limit outside their bounds are clamped.
func (p PaginateQuery) Offset() int64 {
	page := min(max(p.Page, 1), MaxPage)
	limit := min(max(p.Limit, 0), MaxLimit)
	return int64(page-1) * limit
}

// Paginator contains pagination metadata for a query result.
type Paginator struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
}

func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// ToResponse adds the derived page fields for API output.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.CurrentPage > 1,
	}
}

type PaginatorResponse struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// New builds the metadata for a fetched page.
func New(q PaginateQuery, total int64, count int) Paginator {
	return Paginator{
		Total:       total,
		Count:       int64(count),
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}
