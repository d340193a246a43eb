package models

// PageResult is the outcome of one paginated transaction query.
type PageResult struct {
	TotalRecords int64         `json:"total_records"`
	TotalPages   int           `json:"total_pages"`
	CurrentPage  int           `json:"current_page"`
	PageSize     int           `json:"page_size"`
	Data         []Transaction `json:"data"`
	HasNext      bool          `json:"has_next"`
	HasPrev      bool          `json:"has_prev"`
}
