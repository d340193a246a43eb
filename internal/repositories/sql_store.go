package repositories

import (
	"context"
	"fmt"

	"sales-insights/internal/models"
	"sales-insights/internal/query"

	"gorm.io/gorm"
)

// sqlTransactionStore is the relational store strategy. It delegates
// counting, filtering, ordering and slicing to the database, holds no
// connection across calls (GORM acquires and releases from the pool per
// operation) and relies on the migration layer for indexes on the
// filterable and sortable columns.
type sqlTransactionStore struct {
	db *gorm.DB
}

// NewSQLTransactionStore creates a relational transaction store backed by db.
func NewSQLTransactionStore(db *gorm.DB) TransactionStoreInterface {
	return &sqlTransactionStore{db: db}
}

// scope translates the predicate into a chain of bound-parameter conditions.
// User-supplied values only ever travel as arguments, never as query text.
func (s *sqlTransactionStore) scope(ctx context.Context, pred query.Predicate) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})

	if pred.Search != "" {
		term := "%" + pred.Search + "%"
		q = q.Where("(LOWER(customer_name) LIKE ? OR LOWER(phone_number) LIKE ?)", term, term)
	}
	if len(pred.Regions) > 0 {
		q = q.Where("customer_region IN ?", pred.Regions)
	}
	if len(pred.Genders) > 0 {
		q = q.Where("gender IN ?", pred.Genders)
	}
	if len(pred.ProductCategories) > 0 {
		q = q.Where("product_category IN ?", pred.ProductCategories)
	}
	if len(pred.PaymentMethods) > 0 {
		q = q.Where("payment_method IN ?", pred.PaymentMethods)
	}
	if len(pred.Tags) > 0 {
		tagScope := s.db.Where("LOWER(tags) LIKE ?", "%"+pred.Tags[0]+"%")
		for _, tag := range pred.Tags[1:] {
			tagScope = tagScope.Or("LOWER(tags) LIKE ?", "%"+tag+"%")
		}
		q = q.Where(tagScope)
	}
	if pred.AgeMin != nil {
		q = q.Where("age >= ?", *pred.AgeMin)
	}
	if pred.AgeMax != nil {
		q = q.Where("age <= ?", *pred.AgeMax)
	}
	if pred.DateFrom != nil {
		q = q.Where("date >= ?", *pred.DateFrom)
	}
	if pred.DateTo != nil {
		q = q.Where("date <= ?", *pred.DateTo)
	}

	return q
}

// Count returns the number of rows matching the predicate.
func (s *sqlTransactionStore) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	var total int64
	if err := s.scope(ctx, pred).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// Fetch returns one ordered page of rows matching the predicate. sortColumn
// and direction come from the sort resolver's allow-list, never from user
// input, so splicing them into the ORDER BY is safe.
func (s *sqlTransactionStore) Fetch(ctx context.Context, pred query.Predicate, sortColumn string, direction query.Direction, offset, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.scope(ctx, pred).
		Order(fmt.Sprintf("%s %s", sortColumn, direction)).
		Order(query.TieBreakColumn + " ASC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return transactions, nil
}

// distinctColumns is the allow-list of columns DistinctValues may touch.
var distinctColumns = map[string]struct{}{
	ColumnRegion:        {},
	ColumnGender:        {},
	ColumnCategory:      {},
	ColumnTags:          {},
	ColumnPaymentMethod: {},
}

// DistinctValues returns the sorted distinct non-empty values of column.
func (s *sqlTransactionStore) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if _, ok := distinctColumns[column]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	var values []string
	err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Distinct().
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Order(column + " ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s values: %w", column, err)
	}

	return values, nil
}

// AgeRange returns the inclusive min/max age across all rows.
func (s *sqlTransactionStore) AgeRange(ctx context.Context) (int, int, error) {
	var bounds struct {
		MinAge *int
		MaxAge *int
	}

	err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("MIN(age) AS min_age, MAX(age) AS max_age").
		Scan(&bounds).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute age range: %w", err)
	}

	if bounds.MinAge == nil || bounds.MaxAge == nil {
		return emptyAgeMin, emptyAgeMax, nil
	}
	return *bounds.MinAge, *bounds.MaxAge, nil
}

// Size returns the total number of rows.
func (s *sqlTransactionStore) Size(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}
