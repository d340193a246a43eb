package query

import "strings"

// Direction is a sort direction keyword safe to splice into an ORDER BY.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

const (
	// DefaultSortColumn is used when the client key is unknown.
	DefaultSortColumn = "date"
	// TieBreakColumn gives equal sort keys a deterministic total order so
	// page boundaries are stable across repeated reads.
	TieBreakColumn = "transaction_id"
)

// sortColumns is the allow-list mapping client sort keys to physical
// columns. Restricting sorts to this map is what prevents arbitrary-column
// sort injection on the relational backend.
var sortColumns = map[string]string{
	"date":          "date",
	"quantity":      "quantity",
	"customer_name": "customer_name",
}

// ResolveSort maps a client-facing sort key and order onto an allowed
// physical column and direction. Unknown keys silently fall back to the
// default column; anything other than asc/desc (case-insensitive) falls back
// to descending.
func ResolveSort(sortBy, sortOrder string) (string, Direction) {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = DefaultSortColumn
	}
	if strings.EqualFold(sortOrder, "asc") {
		return column, Ascending
	}
	return column, Descending
}

// SortableColumns returns the client-facing sort keys, for documentation and
// validation surfaces.
func SortableColumns() []string {
	keys := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		keys = append(keys, k)
	}
	return keys
}
