package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"sales-insights/internal/models"
	"sales-insights/internal/query"
)

// Conventional age range reported by an empty store.
const (
	emptyAgeMin = 0
	emptyAgeMax = 100
)

// memoryTransactionStore is the in-process tabular strategy: all rows are
// loaded once at startup and every query is an O(N) scan. The slice is never
// mutated after construction, so concurrent reads need no locking.
type memoryTransactionStore struct {
	records []models.Transaction
}

// NewMemoryTransactionStore creates an in-memory transaction store over the
// given rows. The store takes ownership of the slice.
func NewMemoryTransactionStore(records []models.Transaction) TransactionStoreInterface {
	return &memoryTransactionStore{records: records}
}

func (s *memoryTransactionStore) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var total int64
	for i := range s.records {
		if pred.Matches(&s.records[i]) {
			total++
		}
	}
	return total, nil
}

func (s *memoryTransactionStore) Fetch(ctx context.Context, pred query.Predicate, sortColumn string, direction query.Direction, offset, limit int) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []models.Transaction
	for i := range s.records {
		if pred.Matches(&s.records[i]) {
			matched = append(matched, s.records[i])
		}
	}

	sortTransactions(matched, sortColumn, direction)

	if offset >= len(matched) {
		return []models.Transaction{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *memoryTransactionStore) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accessor, ok := columnAccessors[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	seen := make(map[string]struct{})
	var values []string
	for i := range s.records {
		v := accessor(&s.records[i])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values, nil
}

func (s *memoryTransactionStore) AgeRange(ctx context.Context) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	if len(s.records) == 0 {
		return emptyAgeMin, emptyAgeMax, nil
	}

	minAge, maxAge := s.records[0].Age, s.records[0].Age
	for i := range s.records[1:] {
		age := s.records[i+1].Age
		if age < minAge {
			minAge = age
		}
		if age > maxAge {
			maxAge = age
		}
	}
	return minAge, maxAge, nil
}

func (s *memoryTransactionStore) Size(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(s.records)), nil
}

// columnAccessors maps filterable column names to field accessors, the
// in-memory counterpart of the SQL store's distinct-column allow-list.
var columnAccessors = map[string]func(*models.Transaction) string{
	ColumnRegion:        func(t *models.Transaction) string { return t.CustomerRegion },
	ColumnGender:        func(t *models.Transaction) string { return t.Gender },
	ColumnCategory:      func(t *models.Transaction) string { return t.ProductCategory },
	ColumnTags:          func(t *models.Transaction) string { return t.Tags },
	ColumnPaymentMethod: func(t *models.Transaction) string { return t.PaymentMethod },
}

// sortTransactions orders rows by the resolved sort column and direction,
// with the transaction-ID tie-break so pagination is deterministic.
func sortTransactions(records []models.Transaction, column string, direction query.Direction) {
	desc := direction == query.Descending

	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]

		var less, equal bool
		switch column {
		case "quantity":
			less, equal = a.Quantity < b.Quantity, a.Quantity == b.Quantity
		case "customer_name":
			cmp := strings.Compare(a.CustomerName, b.CustomerName)
			less, equal = cmp < 0, cmp == 0
		default: // date
			less, equal = a.Date.Before(b.Date), a.Date.Equal(b.Date)
		}

		if equal {
			// Tie-break ascending regardless of direction.
			return a.TransactionID < b.TransactionID
		}
		if desc {
			return !less
		}
		return less
	})
}
