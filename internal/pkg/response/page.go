package response

// PageResponse is the standard wrapper for paginated list payloads.
type PageResponse[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// NewPageResponse is a helper to quickly create a paginated payload.
func NewPageResponse[T any](items []T, page, limit, total int) PageResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if items == nil {
		items = make([]T, 0)
	}

	return PageResponse[T]{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}
}
