package dto

import (
	"sales-insights/internal/models"
)

// ListTransactionsRequest carries the query parameters of the transaction
// search endpoint. Repeated parameters bind to slices; numeric bounds are
// pointers so an absent parameter imposes no constraint. Dates stay strings
// here and are parsed (and rejected with a client error) at the handler
// boundary before filter criteria are built.
type ListTransactionsRequest struct {
	Search          string   `query:"search"`
	CustomerRegion  []string `query:"customer_region"`
	Gender          []string `query:"gender"`
	AgeMin          *int     `query:"age_min" validate:"omitempty,min=0"`
	AgeMax          *int     `query:"age_max" validate:"omitempty,min=0"`
	ProductCategory []string `query:"product_category"`
	Tags            []string `query:"tags"`
	PaymentMethod   []string `query:"payment_method"`
	DateFrom        string   `query:"date_from"`
	DateTo          string   `query:"date_to"`
	SortBy          string   `query:"sort_by"`
	SortOrder       string   `query:"sort_order"`
	Page            int      `query:"page" validate:"omitempty,min=1"`
	PageSize        int      `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// PaginatedTransactionsResponse is the wire shape of one result page.
type PaginatedTransactionsResponse struct {
	TotalRecords int64                `json:"total_records"`
	TotalPages   int                  `json:"total_pages"`
	CurrentPage  int                  `json:"current_page"`
	PageSize     int                  `json:"page_size"`
	Data         []models.Transaction `json:"data"`
	HasNext      bool                 `json:"has_next"`
	HasPrev      bool                 `json:"has_prev"`
}

// FromPageResult converts an engine page result into the response DTO.
func FromPageResult(result *models.PageResult) PaginatedTransactionsResponse {
	return PaginatedTransactionsResponse{
		TotalRecords: result.TotalRecords,
		TotalPages:   result.TotalPages,
		CurrentPage:  result.CurrentPage,
		PageSize:     result.PageSize,
		Data:         result.Data,
		HasNext:      result.HasNext,
		HasPrev:      result.HasPrev,
	}
}
