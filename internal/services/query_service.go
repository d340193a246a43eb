package services

import (
	"context"
	"log/slog"
	"time"

	"sales-insights/internal/models"
	"sales-insights/internal/query"
	"sales-insights/internal/repositories"
)

// transactionQueryService orchestrates predicate construction, sort
// resolution and pagination arithmetic against the record store. It is
// stateless and backend-agnostic; switching the store strategy must not
// change observable behavior.
type transactionQueryService struct {
	store   repositories.TransactionStoreInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewTransactionQueryService creates a new transaction query service.
func NewTransactionQueryService(
	store repositories.TransactionStoreInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionQueryServiceInterface {
	return &transactionQueryService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Query runs one paginated, filtered, sorted search. A page beyond the last
// yields an empty data slice, not an error.
func (s *transactionQueryService) Query(ctx context.Context, criteria models.FilterCriteria) (*models.PageResult, error) {
	start := time.Now()

	criteria = criteria.Normalized()
	pred := query.BuildPredicate(criteria)
	column, direction := query.ResolveSort(criteria.SortBy, criteria.SortOrder)

	total, err := s.store.Count(ctx, pred)
	if err != nil {
		s.metrics.RecordQuery("error", time.Since(start))
		return nil, err
	}

	window := query.Paginate(total, criteria.Page, criteria.PageSize)

	records := []models.Transaction{}
	if total > 0 && window.Offset < int(total) {
		records, err = s.store.Fetch(ctx, pred, column, direction, window.Offset, window.Limit)
		if err != nil {
			s.metrics.RecordQuery("error", time.Since(start))
			return nil, err
		}
	}
	if records == nil {
		records = []models.Transaction{}
	}

	s.metrics.RecordQuery("ok", time.Since(start))
	s.logger.Debug("transaction query served",
		"total", total,
		"page", criteria.Page,
		"page_size", criteria.PageSize,
		"sort", column,
		"returned", len(records),
	)

	return &models.PageResult{
		TotalRecords: total,
		TotalPages:   window.TotalPages,
		CurrentPage:  criteria.Page,
		PageSize:     criteria.PageSize,
		Data:         records,
		HasNext:      window.HasNext,
		HasPrev:      window.HasPrev,
	}, nil
}
