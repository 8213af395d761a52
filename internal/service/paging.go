package service

import "github.com/edudesk/tms-api/internal/models"

const defaultPageSize = 20

// paginate slices a filtered collection and reports totals. Page numbers are
// 1-based; out-of-range pages return an empty slice with intact metadata.
func paginate[T any](items []T, page, size int) ([]T, *models.Pagination) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	total := len(items)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}
