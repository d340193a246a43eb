package models

import "time"

const (
	DefaultSortBy    = "date"
	DefaultSortOrder = "desc"
	DefaultPage      = 1
	DefaultPageSize  = 10
	MaxPageSize      = 100
)

// FilterCriteria contains the filtering, sorting and paging options for
// transaction queries. Set-valued fields are OR within the field and AND
// across fields; absent bounds impose no constraint.
type FilterCriteria struct {
	Search            string
	Regions           []string
	Genders           []string
	ProductCategories []string
	Tags              []string
	PaymentMethods    []string
	AgeMin            *int
	AgeMax            *int
	DateFrom          *time.Time
	DateTo            *time.Time
	SortBy            string
	SortOrder         string
	Page              int
	PageSize          int
}

// Normalized returns a copy with paging and sort fields clamped to valid
// values. Unknown sort keys are left as-is; the sort resolver handles the
// fallback so a bogus key behaves exactly like the default.
func (c FilterCriteria) Normalized() FilterCriteria {
	if c.SortBy == "" {
		c.SortBy = DefaultSortBy
	}
	if c.SortOrder == "" {
		c.SortOrder = DefaultSortOrder
	}
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
	return c
}
