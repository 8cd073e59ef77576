package domain

// PaginationParams selects one page of an in-memory listing. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Paginate returns the window of items selected by p. Out-of-range pages yield an empty slice.
// The page bound is checked before any multiplication so arbitrary Page values cannot overflow.
func Paginate[T any](items []T, p PaginationParams) []T {
	if p.PageSize <= 0 {
		return items
	}
	page := max(p.Page, 1)
	pages := len(items) / p.PageSize
	if len(items)%p.PageSize != 0 {
		pages++
	}
	if page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * p.PageSize
	end := min(start+p.PageSize, len(items))
	return items[start:end]
}
