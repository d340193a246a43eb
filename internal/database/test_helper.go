package database

import (
	"testing"

	"sales-insights/internal/config"
	"sales-insights/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the transactions
// schema migrated, for repository and engine tests.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// SeedTestTransactions inserts the given rows into the test database.
func SeedTestTransactions(t *testing.T, db *DB, transactions []models.Transaction) {
	t.Helper()

	if len(transactions) == 0 {
		return
	}
	if err := db.CreateInBatches(transactions, 500).Error; err != nil {
		t.Fatalf("failed to seed test transactions: %v", err)
	}
}

// CleanupTestDB empties the transactions table between tests.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup transactions table: %v", err)
	}
}
