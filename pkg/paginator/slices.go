package paginator

// PaginateSlice returns the requested page of an in-memory slice.
func PaginateSlice[T any](slice []T, query PaginateQuery) ([]T, Paginator) {
	query.Adjust()
	total := int64(len(slice))

	start := query.Offset()
	if start >= total {
		return []T{}, New(query, total, 0)
	}
	end := start + query.Limit
	if end > total {
		end = total
	}
	page := slice[start:end]
	return page, New(query, total, len(page))
}
