package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"sales-insights/internal/models"
	"sales-insights/internal/repositories"

	"golang.org/x/sync/singleflight"
)

const refreshKey = "filter-options"

// filterOptionsService caches the distinct values of every filterable column
// plus the age range. The snapshot is replaced wholesale by an atomic swap,
// never mutated in place, so readers always observe a complete snapshot.
// Concurrent refreshes collapse to one in-flight rebuild whose result is
// shared with all waiters.
type filterOptionsService struct {
	store   repositories.TransactionStoreInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger

	snapshot atomic.Pointer[models.FilterOptions]
	group    singleflight.Group
}

// NewFilterOptionsService creates a filter options cache over the store.
// The cache starts empty; the first read refreshes it lazily.
func NewFilterOptionsService(
	store repositories.TransactionStoreInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) FilterOptionsServiceInterface {
	return &filterOptionsService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Options returns the cached snapshot, refreshing synchronously first if the
// cache is cold. Callers receive a clone; the cached snapshot never escapes
// by reference.
func (s *filterOptionsService) Options(ctx context.Context) (*models.FilterOptions, error) {
	if snap := s.snapshot.Load(); snap != nil {
		s.metrics.RecordOptionsRead(true)
		return snap.Clone(), nil
	}

	s.metrics.RecordOptionsRead(false)
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	// Refresh either stored a snapshot or returned an error above.
	return s.snapshot.Load().Clone(), nil
}

// Refresh recomputes the snapshot from the full store and swaps it in. The
// rebuild runs detached from the caller's cancellation: a timing-out caller
// stops waiting, but the in-flight rebuild completes and its result is
// shared with the remaining waiters. On failure the previous snapshot, if
// any, stays servable.
func (s *filterOptionsService) Refresh(ctx context.Context) error {
	ch := s.group.DoChan(refreshKey, func() (interface{}, error) {
		return nil, s.rebuild(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown releases the cached snapshot.
func (s *filterOptionsService) Shutdown() {
	s.snapshot.Store(nil)
	s.logger.Info("filter options cache released")
}

// rebuild is the O(N) recompute. The new snapshot is only stored after every
// column succeeded, so a partial failure can never leave a torn snapshot.
func (s *filterOptionsService) rebuild(ctx context.Context) error {
	start := time.Now()

	regions, err := s.store.DistinctValues(ctx, repositories.ColumnRegion)
	if err != nil {
		return s.refreshFailed(err, start)
	}
	genders, err := s.store.DistinctValues(ctx, repositories.ColumnGender)
	if err != nil {
		return s.refreshFailed(err, start)
	}
	categories, err := s.store.DistinctValues(ctx, repositories.ColumnCategory)
	if err != nil {
		return s.refreshFailed(err, start)
	}
	rawTags, err := s.store.DistinctValues(ctx, repositories.ColumnTags)
	if err != nil {
		return s.refreshFailed(err, start)
	}
	paymentMethods, err := s.store.DistinctValues(ctx, repositories.ColumnPaymentMethod)
	if err != nil {
		return s.refreshFailed(err, start)
	}
	minAge, maxAge, err := s.store.AgeRange(ctx)
	if err != nil {
		return s.refreshFailed(err, start)
	}

	options := &models.FilterOptions{
		Regions:           emptyAsSlice(regions),
		Genders:           emptyAsSlice(genders),
		AgeRange:          models.AgeRange{Min: minAge, Max: maxAge},
		ProductCategories: emptyAsSlice(categories),
		Tags:              splitTagValues(rawTags),
		PaymentMethods:    emptyAsSlice(paymentMethods),
	}

	s.snapshot.Store(options)
	s.metrics.RecordOptionsRefresh("ok", time.Since(start))
	s.logger.Info("filter options refreshed",
		"regions", len(options.Regions),
		"tags", len(options.Tags),
		"duration", time.Since(start),
	)
	return nil
}

func (s *filterOptionsService) refreshFailed(err error, start time.Time) error {
	s.metrics.RecordOptionsRefresh("error", time.Since(start))
	s.logger.Error("filter options refresh failed", "error", err)
	return err
}

// splitTagValues splits the raw comma-joined tag strings into individual
// tags, trimming whitespace so sloppy source delimiters ("Gift, Electronics"
// vs "Gift,Electronics") collapse to one option each.
func splitTagValues(rawValues []string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, raw := range rawValues {
		for _, part := range strings.Split(raw, ",") {
			tag := strings.TrimSpace(part)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return emptyAsSlice(tags)
}

// emptyAsSlice keeps option lists JSON-encoding as [] rather than null.
func emptyAsSlice(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
