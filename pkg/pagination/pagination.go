package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

// Sort orders accepted in query strings.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params holds pagination and sorting parameters extracted from query strings.
type Params struct {
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Offset    int    `json:"-"`
}

// DefaultParams returns sensible defaults: first page of 20, newest first.
func DefaultParams() Params {
	return Params{
		Page:      1,
		PerPage:   20,
		SortBy:    "created_at",
		SortOrder: OrderDesc,
		Offset:    0,
	}
}

// FromRequest extracts pagination and sorting parameters from an HTTP request.
// Out-of-range or malformed values fall back to the defaults; sort_by is taken
// verbatim here and must be validated against a column whitelist by the caller.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	if perPage := r.URL.Query().Get("per_page"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= 100 {
			p.PerPage = v
		}
	}

	if sortBy := r.URL.Query().Get("sort_by"); sortBy != "" {
		p.SortBy = sortBy
	}

	if order := strings.ToLower(r.URL.Query().Get("sort_order")); order == OrderAsc || order == OrderDesc {
		p.SortOrder = order
	}

	p.Offset = (p.Page - 1) * p.PerPage
	return p
}

// Result wraps a paginated response.
type Result[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"total_count"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewResult creates a paginated result. TotalPages is ceil(total/perPage).
func NewResult[T any](data []T, totalCount int, params Params) Result[T] {
	totalPages := totalCount / params.PerPage
	if totalCount%params.PerPage > 0 {
		totalPages++
	}

	if data == nil {
		data = []T{}
	}

	return Result[T]{
		Data:       data,
		TotalCount: totalCount,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}
