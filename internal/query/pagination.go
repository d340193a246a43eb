package query

// Window is the offset/limit slice of a result set plus the derived page
// metadata.
type Window struct {
	Offset     int
	Limit      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate converts a total matching count, a 1-based page and a page size
// into a fetch window. total_pages is ceil(total/pageSize) and zero when the
// total is zero. A page beyond the last yields an empty slice downstream, not
// an error, so no range check happens here.
func Paginate(total int64, page, pageSize int) Window {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return Window{
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
