package services

import (
	"context"
	"time"

	"sales-insights/internal/models"
)

// TransactionQueryServiceInterface defines the paginated transaction search
// contract.
type TransactionQueryServiceInterface interface {
	Query(ctx context.Context, criteria models.FilterCriteria) (*models.PageResult, error)
}

// FilterOptionsServiceInterface defines the filter-options cache contract.
// Options is O(1) once a snapshot exists; a cold read triggers a synchronous
// single-flight refresh. Refresh always recomputes and atomically swaps the
// snapshot. Shutdown releases the cached snapshot.
type FilterOptionsServiceInterface interface {
	Options(ctx context.Context) (*models.FilterOptions, error)
	Refresh(ctx context.Context) error
	Shutdown()
}

// SampleDataGeneratorInterface produces realistic sales transaction rows for
// seeding and tests.
type SampleDataGeneratorInterface interface {
	Generate(n int) []models.Transaction
}

// MetricsRecorderInterface records operational metrics for the query and
// options paths.
type MetricsRecorderInterface interface {
	RecordQuery(status string, duration time.Duration)
	RecordOptionsRead(hit bool)
	RecordOptionsRefresh(status string, duration time.Duration)
}
