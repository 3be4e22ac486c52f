package dto

type Batch[T any] struct {
	Entities          []T    `json:"entities"`
	ContinuationToken string `json:"continuation_token"`
}

// PaginationQuery accepts order_by and descending_sort as aliases of
// sort_by and descending.
type PaginationQuery struct {
	Take              *int   `form:"take"`
	ContinuationToken string `form:"continuation_token"`
	SortBy            string `form:"sort_by"`
	OrderBy           string `form:"order_by"`
	Descending        *bool  `form:"descending"`
	DescendingSort    *bool  `form:"descending_sort"`
}
