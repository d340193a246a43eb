package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sales-insights/internal/models"
	"sales-insights/internal/query"
	"sales-insights/internal/repositories"
	"sales-insights/internal/services"

	"github.com/stretchr/testify/suite"
)

// stubOptionsStore is a hand-rolled store double for the options cache tests.
// It counts refresh round-trips and can be made to block or fail, which the
// generated mocks cannot express cleanly for concurrency assertions.
type stubOptionsStore struct {
	mu       sync.Mutex
	distinct map[string][]string
	minAge   int
	maxAge   int
	err      error

	refreshCalls atomic.Int64
	started      chan struct{}
	release      chan struct{}
	startOnce    sync.Once
}

func newStubOptionsStore() *stubOptionsStore {
	return &stubOptionsStore{
		distinct: map[string][]string{
			repositories.ColumnRegion:        {"North", "South"},
			repositories.ColumnGender:        {"Female", "Male"},
			repositories.ColumnCategory:      {"Electronics"},
			repositories.ColumnTags:          {"Gift, Electronics", "Gift"},
			repositories.ColumnPaymentMethod: {"Cash", "UPI"},
		},
		minAge: 23,
		maxAge: 61,
	}
}

func (s *stubOptionsStore) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubOptionsStore) DistinctValues(_ context.Context, column string) ([]string, error) {
	// The region column is fetched first, so it marks one refresh round-trip.
	if column == repositories.ColumnRegion {
		s.refreshCalls.Add(1)
		if s.started != nil {
			s.startOnce.Do(func() { close(s.started) })
		}
		if s.release != nil {
			<-s.release
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.distinct[column], nil
}

func (s *stubOptionsStore) AgeRange(context.Context) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, 0, s.err
	}
	return s.minAge, s.maxAge, nil
}

func (s *stubOptionsStore) Count(context.Context, query.Predicate) (int64, error) {
	return 0, nil
}

func (s *stubOptionsStore) Fetch(context.Context, query.Predicate, string, query.Direction, int, int) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubOptionsStore) Size(context.Context) (int64, error) { return 0, nil }

type FilterOptionsServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestFilterOptionsServiceSuite(t *testing.T) {
	suite.Run(t, new(FilterOptionsServiceTestSuite))
}

func (s *FilterOptionsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FilterOptionsServiceTestSuite) newService(store repositories.TransactionStoreInterface) services.FilterOptionsServiceInterface {
	return services.NewFilterOptionsService(
		store,
		services.NewNoopMetrics(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *FilterOptionsServiceTestSuite) TestOptions_ColdRead_RefreshesOnce() {
	store := newStubOptionsStore()
	svc := s.newService(store)

	options, err := svc.Options(s.ctx)

	s.NoError(err)
	s.Equal([]string{"North", "South"}, options.Regions)
	s.Equal([]string{"Female", "Male"}, options.Genders)
	s.Equal(23, options.AgeRange.Min)
	s.Equal(61, options.AgeRange.Max)
	s.Equal(int64(1), store.refreshCalls.Load())
}

func (s *FilterOptionsServiceTestSuite) TestOptions_WarmReads_DoNotTouchStore() {
	store := newStubOptionsStore()
	svc := s.newService(store)

	_, err := svc.Options(s.ctx)
	s.NoError(err)

	for i := 0; i < 50; i++ {
		options, err := svc.Options(s.ctx)
		s.NoError(err)
		s.NotNil(options)
	}

	s.Equal(int64(1), store.refreshCalls.Load())
}

func (s *FilterOptionsServiceTestSuite) TestOptions_SplitsAndDeduplicatesTags() {
	store := newStubOptionsStore()
	svc := s.newService(store)

	options, err := svc.Options(s.ctx)

	s.NoError(err)
	// "Gift, Electronics" and "Gift" collapse into two sorted tag options.
	s.Equal([]string{"Electronics", "Gift"}, options.Tags)
}

func (s *FilterOptionsServiceTestSuite) TestOptions_ConcurrentColdReads_SingleRefresh() {
	store := newStubOptionsStore()
	store.started = make(chan struct{})
	store.release = make(chan struct{})
	svc := s.newService(store)

	const readers = 10
	var wg sync.WaitGroup
	results := make([]*models.FilterOptions, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Options(s.ctx)
		}(i)
	}

	// Hold the rebuild open until every reader has had a chance to pile in,
	// then let the single flight complete.
	<-store.started
	time.Sleep(50 * time.Millisecond)
	close(store.release)
	wg.Wait()

	s.Equal(int64(1), store.refreshCalls.Load())
	for i := 0; i < readers; i++ {
		s.NoError(errs[i])
		s.Equal([]string{"North", "South"}, results[i].Regions)
	}
}

func (s *FilterOptionsServiceTestSuite) TestRefresh_Failure_KeepsServingPreviousSnapshot() {
	store := newStubOptionsStore()
	svc := s.newService(store)

	_, err := svc.Options(s.ctx)
	s.NoError(err)

	store.setError(errors.New("store unavailable"))
	s.Error(svc.Refresh(s.ctx))

	// The stale-but-complete snapshot is still served.
	options, err := svc.Options(s.ctx)
	s.NoError(err)
	s.Equal([]string{"North", "South"}, options.Regions)
}

func (s *FilterOptionsServiceTestSuite) TestOptions_ColdReadFailure_ReturnsError() {
	store := newStubOptionsStore()
	store.setError(errors.New("store unavailable"))
	svc := s.newService(store)

	_, err := svc.Options(s.ctx)

	s.Error(err)
}

func (s *FilterOptionsServiceTestSuite) TestRefresh_CallerTimeout_DoesNotAbortRebuild() {
	store := newStubOptionsStore()
	store.started = make(chan struct{})
	store.release = make(chan struct{})
	svc := s.newService(store)

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	refreshDone := make(chan error, 1)
	go func() { refreshDone <- svc.Refresh(ctx) }()

	<-store.started
	// The caller times out while the rebuild is still blocked.
	err := <-refreshDone
	s.ErrorIs(err, context.DeadlineExceeded)

	// Releasing the store lets the detached rebuild finish and store its
	// snapshot despite the caller having given up.
	close(store.release)
	s.Eventually(func() bool {
		options, err := svc.Options(context.Background())
		return err == nil && len(options.Regions) == 2 && store.refreshCalls.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func (s *FilterOptionsServiceTestSuite) TestOptions_SnapshotIsIsolatedFromCallers() {
	store := newStubOptionsStore()
	svc := s.newService(store)

	first, err := svc.Options(s.ctx)
	s.NoError(err)
	first.Regions[0] = "mutated"
	first.Tags = append(first.Tags, "mutated")

	second, err := svc.Options(s.ctx)
	s.NoError(err)
	s.Equal([]string{"North", "South"}, second.Regions)
	s.Equal([]string{"Electronics", "Gift"}, second.Tags)
}

func (s *FilterOptionsServiceTestSuite) TestOptions_EmptyStore_ConventionalShape() {
	svc := s.newService(repositories.NewMemoryTransactionStore(nil))

	options, err := svc.Options(s.ctx)

	s.NoError(err)
	s.NotNil(options.Regions)
	s.Empty(options.Regions)
	s.NotNil(options.Tags)
	s.Empty(options.Tags)
	s.Equal(0, options.AgeRange.Min)
	s.Equal(100, options.AgeRange.Max)
}

func (s *FilterOptionsServiceTestSuite) TestShutdown_ReleasesSnapshot() {
	store := newStubOptionsStore()
	svc := s.newService(store)

	_, err := svc.Options(s.ctx)
	s.NoError(err)
	svc.Shutdown()

	_, err = svc.Options(s.ctx)
	s.NoError(err)
	s.Equal(int64(2), store.refreshCalls.Load())
}
