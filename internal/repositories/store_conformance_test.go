package repositories_test

import (
	"context"
	"testing"
	"time"

	"sales-insights/internal/database"
	"sales-insights/internal/models"
	"sales-insights/internal/query"
	"sales-insights/internal/repositories"

	"github.com/stretchr/testify/suite"
)

// StoreConformanceSuite runs the same behavioral checks against both store
// strategies. The two backends must be interchangeable: every test here is a
// shared contract, not an implementation detail of either one.
type StoreConformanceSuite struct {
	suite.Suite
	ctx      context.Context
	newStore func(records []models.Transaction) repositories.TransactionStoreInterface
}

func TestMemoryStoreConformance(t *testing.T) {
	s := &StoreConformanceSuite{
		newStore: func(records []models.Transaction) repositories.TransactionStoreInterface {
			return repositories.NewMemoryTransactionStore(records)
		},
	}
	suite.Run(t, s)
}

func TestSQLStoreConformance(t *testing.T) {
	s := &StoreConformanceSuite{
		newStore: func(records []models.Transaction) repositories.TransactionStoreInterface {
			db := database.SetupTestDB(t)
			database.SeedTestTransactions(t, db, records)
			return repositories.NewSQLTransactionStore(db.DB)
		},
	}
	suite.Run(t, s)
}

func (s *StoreConformanceSuite) SetupTest() {
	s.ctx = context.Background()
}

func fixtureTransactions() []models.Transaction {
	day := func(m time.Month, d int) time.Time {
		return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []models.Transaction{
		{TransactionID: "TXN-001", Date: day(time.March, 10), CustomerID: "CUST-001", CustomerName: "Alice Johnson", PhoneNumber: "555-0101", Gender: "Female", Age: 34, CustomerRegion: "North", ProductCategory: "Electronics", Tags: "Gift, Premium", Quantity: 5, PaymentMethod: "Credit Card"},
		{TransactionID: "TXN-002", Date: day(time.March, 12), CustomerID: "CUST-002", CustomerName: "Bob Smith", PhoneNumber: "555-0102", Gender: "Male", Age: 28, CustomerRegion: "South", ProductCategory: "Clothing", Tags: "Clearance", Quantity: 2, PaymentMethod: "UPI"},
		{TransactionID: "TXN-003", Date: day(time.February, 1), CustomerID: "CUST-003", CustomerName: "Carol White", PhoneNumber: "555-0103", Gender: "Female", Age: 45, CustomerRegion: "East", ProductCategory: "Electronics", Tags: "Premium", Quantity: 7, PaymentMethod: "Debit Card"},
		{TransactionID: "TXN-004", Date: day(time.January, 15), CustomerID: "CUST-004", CustomerName: "David Brown", PhoneNumber: "555-0104", Gender: "Male", Age: 52, CustomerRegion: "West", ProductCategory: "Groceries", Tags: "", Quantity: 1, PaymentMethod: "Cash"},
		{TransactionID: "TXN-005", Date: day(time.March, 12), CustomerID: "CUST-005", CustomerName: "Eve Davis", PhoneNumber: "555-0105", Gender: "Female", Age: 23, CustomerRegion: "North", ProductCategory: "Clothing", Tags: "Gift", Quantity: 3, PaymentMethod: "Credit Card"},
		{TransactionID: "TXN-006", Date: day(time.February, 20), CustomerID: "CUST-006", CustomerName: "Frank Miller", PhoneNumber: "555-0106", Gender: "Male", Age: 61, CustomerRegion: "South", ProductCategory: "Electronics", Tags: "Refurbished, Clearance", Quantity: 4, PaymentMethod: "Net Banking"},
		{TransactionID: "TXN-007", Date: day(time.March, 5), CustomerID: "CUST-007", CustomerName: "Grace Alice Lee", PhoneNumber: "555-0107", Gender: "Female", Age: 37, CustomerRegion: "Central", ProductCategory: "Sports", Tags: "Premium, Gift", Quantity: 9, PaymentMethod: "UPI"},
		{TransactionID: "TXN-008", Date: day(time.March, 12), CustomerID: "CUST-008", CustomerName: "Henry Wilson", PhoneNumber: "555-0108", Gender: "Male", Age: 30, CustomerRegion: "North", ProductCategory: "Groceries", Tags: "", Quantity: 6, PaymentMethod: "Cash"},
	}
}

func transactionIDs(records []models.Transaction) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.TransactionID
	}
	return ids
}

func (s *StoreConformanceSuite) TestCount_EmptyPredicate_CountsEverything() {
	store := s.newStore(fixtureTransactions())

	total, err := store.Count(s.ctx, query.Predicate{})

	s.NoError(err)
	s.Equal(int64(8), total)
}

func (s *StoreConformanceSuite) TestCount_MultiValueFilter_UnionWithinField() {
	store := s.newStore(fixtureTransactions())

	total, err := store.Count(s.ctx, query.Predicate{Regions: []string{"North", "South"}})

	s.NoError(err)
	s.Equal(int64(5), total)
}

func (s *StoreConformanceSuite) TestCount_FiltersAcrossFieldsIntersect() {
	store := s.newStore(fixtureTransactions())

	total, err := store.Count(s.ctx, query.Predicate{
		Regions: []string{"North"},
		Genders: []string{"Female"},
	})

	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *StoreConformanceSuite) TestCount_SearchMatchesNameOrPhone() {
	store := s.newStore(fixtureTransactions())

	byName, err := store.Count(s.ctx, query.Predicate{Search: "alice"})
	s.NoError(err)
	s.Equal(int64(2), byName)

	byPhone, err := store.Count(s.ctx, query.Predicate{Search: "555-0103"})
	s.NoError(err)
	s.Equal(int64(1), byPhone)
}

func (s *StoreConformanceSuite) TestCount_TagsAreOrSemantics() {
	store := s.newStore(fixtureTransactions())

	single, err := store.Count(s.ctx, query.Predicate{Tags: []string{"gift"}})
	s.NoError(err)
	s.Equal(int64(3), single)

	multi, err := store.Count(s.ctx, query.Predicate{Tags: []string{"clearance", "refurbished"}})
	s.NoError(err)
	s.Equal(int64(2), multi)
}

func (s *StoreConformanceSuite) TestCount_AgeBoundsInclusive() {
	store := s.newStore(fixtureTransactions())
	ageMin, ageMax := 28, 37

	total, err := store.Count(s.ctx, query.Predicate{AgeMin: &ageMin, AgeMax: &ageMax})

	s.NoError(err)
	s.Equal(int64(4), total)
}

func (s *StoreConformanceSuite) TestCount_DateBoundsInclusive() {
	store := s.newStore(fixtureTransactions())
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	total, err := store.Count(s.ctx, query.Predicate{DateFrom: &from, DateTo: &to})

	s.NoError(err)
	s.Equal(int64(5), total)
}

func (s *StoreConformanceSuite) TestFetch_SortsByQuantityAscending() {
	store := s.newStore(fixtureTransactions())

	records, err := store.Fetch(s.ctx, query.Predicate{}, "quantity", query.Ascending, 0, 100)

	s.NoError(err)
	s.Equal(
		[]string{"TXN-004", "TXN-002", "TXN-005", "TXN-006", "TXN-001", "TXN-008", "TXN-003", "TXN-007"},
		transactionIDs(records),
	)
}

func (s *StoreConformanceSuite) TestFetch_EqualSortKeys_TieBreakOnTransactionID() {
	store := s.newStore(fixtureTransactions())

	records, err := store.Fetch(s.ctx, query.Predicate{}, "date", query.Descending, 0, 100)

	s.NoError(err)
	// Three records share 2024-03-12; they must appear in ascending
	// transaction-ID order even under a descending sort.
	s.Equal(
		[]string{"TXN-002", "TXN-005", "TXN-008", "TXN-001", "TXN-007", "TXN-006", "TXN-003", "TXN-004"},
		transactionIDs(records),
	)
}

func (s *StoreConformanceSuite) TestFetch_PagesPartitionTheResultSet() {
	store := s.newStore(fixtureTransactions())

	seen := make(map[string]int)
	var ordered []string
	for offset := 0; offset < 8; offset += 3 {
		page, err := store.Fetch(s.ctx, query.Predicate{}, "date", query.Descending, offset, 3)
		s.NoError(err)
		for _, id := range transactionIDs(page) {
			seen[id]++
			ordered = append(ordered, id)
		}
	}

	s.Len(ordered, 8)
	for id, count := range seen {
		s.Equal(1, count, "record %s appeared on more than one page", id)
	}
}

func (s *StoreConformanceSuite) TestFetch_OffsetBeyondMatches_ReturnsEmpty() {
	store := s.newStore(fixtureTransactions())

	records, err := store.Fetch(s.ctx, query.Predicate{}, "date", query.Descending, 100, 10)

	s.NoError(err)
	s.Empty(records)
}

func (s *StoreConformanceSuite) TestDistinctValues_SortedAndNonEmpty() {
	store := s.newStore(fixtureTransactions())

	regions, err := store.DistinctValues(s.ctx, repositories.ColumnRegion)
	s.NoError(err)
	s.Equal([]string{"Central", "East", "North", "South", "West"}, regions)

	// Two records carry empty tag text; empty values never become options.
	tags, err := store.DistinctValues(s.ctx, repositories.ColumnTags)
	s.NoError(err)
	s.Equal(
		[]string{"Clearance", "Gift", "Gift, Premium", "Premium", "Premium, Gift", "Refurbished, Clearance"},
		tags,
	)
}

func (s *StoreConformanceSuite) TestDistinctValues_UnknownColumn_Rejected() {
	store := s.newStore(fixtureTransactions())

	_, err := store.DistinctValues(s.ctx, "salesperson_id; DROP TABLE transactions")

	s.ErrorIs(err, repositories.ErrUnknownColumn)
}

func (s *StoreConformanceSuite) TestAgeRange_MinAndMax() {
	store := s.newStore(fixtureTransactions())

	minAge, maxAge, err := store.AgeRange(s.ctx)

	s.NoError(err)
	s.Equal(23, minAge)
	s.Equal(61, maxAge)
}

func (s *StoreConformanceSuite) TestAgeRange_EmptyStore_ReportsConventionalBounds() {
	store := s.newStore(nil)

	minAge, maxAge, err := store.AgeRange(s.ctx)

	s.NoError(err)
	s.Equal(0, minAge)
	s.Equal(100, maxAge)
}

func (s *StoreConformanceSuite) TestSize() {
	store := s.newStore(fixtureTransactions())

	size, err := store.Size(s.ctx)

	s.NoError(err)
	s.Equal(int64(8), size)
}
