package helpers

import (
	"net/url"
	"strconv"

	"techscene/internal/domain"
)

// Listing pagination defaults and limits. MaxPage keeps page arithmetic well inside int range;
// no listing here comes close to MaxPage*MaxPageSize entries.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPage         = 10000
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the request query string.
// Missing or non-numeric values fall back to defaults; out-of-range values are clamped.
func ParsePagination(q url.Values) domain.PaginationParams {
	return domain.PaginationParams{
		Page:     queryInt(q, "page", DefaultPage, MaxPage),
		PageSize: queryInt(q, "page_size", DefaultPageSize, MaxPageSize),
	}
}

func queryInt(q url.Values, key string, def, limit int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return def
	}
	return min(v, limit)
}

// PaginationMeta describes the page of a filtered listing returned in a list response.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta describes page p of a listing with total matching entries.
func NewPaginationMeta(p domain.PaginationParams, total int) PaginationMeta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = total / p.PageSize
		if total%p.PageSize != 0 {
			totalPages++
		}
	}
	return PaginationMeta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
