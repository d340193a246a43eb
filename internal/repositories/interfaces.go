package repositories

import (
	"context"
	"errors"

	"sales-insights/internal/models"
	"sales-insights/internal/query"
)

var (
	// ErrUnknownColumn is returned when a distinct-values request names a
	// column outside the filterable allow-list.
	ErrUnknownColumn = errors.New("unknown filter column")
)

// Filterable column names accepted by DistinctValues.
const (
	ColumnRegion        = "customer_region"
	ColumnGender        = "gender"
	ColumnCategory      = "product_category"
	ColumnTags          = "tags"
	ColumnPaymentMethod = "payment_method"
)

// TransactionStoreInterface is the record-store capability contract: count
// matching rows, fetch an ordered page of matching rows, and list the
// distinct values of a filterable column. The two strategies behind it
// (relational and in-memory) must be observably interchangeable except for
// performance and consistency-with-concurrent-writes characteristics.
type TransactionStoreInterface interface {
	// Count returns the number of rows matching the predicate.
	Count(ctx context.Context, pred query.Predicate) (int64, error)

	// Fetch returns the rows matching the predicate, ordered by the given
	// allow-listed column and direction with a deterministic transaction-ID
	// tie-break, sliced to [offset, offset+limit).
	Fetch(ctx context.Context, pred query.Predicate, sortColumn string, direction query.Direction, offset, limit int) ([]models.Transaction, error)

	// DistinctValues returns the sorted distinct non-empty values of one of
	// the filterable columns. For the tags column the values are the raw
	// comma-joined tag strings; splitting is the options cache's concern.
	DistinctValues(ctx context.Context, column string) ([]string, error)

	// AgeRange returns the inclusive min/max age across all rows. An empty
	// store reports the conventional (0, 100) range.
	AgeRange(ctx context.Context) (int, int, error)

	// Size returns the total number of rows in the store.
	Size(ctx context.Context) (int64, error)
}
