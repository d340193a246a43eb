package database

import (
	"fmt"
	"log"
	"time"

	"sales-insights/internal/config"
	"sales-insights/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Transaction{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes provisions the indexes the query paths depend on: the
// sortable columns in both directions, every filterable column, and
// lowercased expression indexes for the case-insensitive search and tag
// matching. Best effort; failures are logged, not fatal.
func (db *DB) CreateIndexes() error {
	queries := []string{
		// Sortable columns
		"CREATE INDEX IF NOT EXISTS idx_transactions_date_desc ON transactions(date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_date_asc ON transactions(date ASC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_quantity ON transactions(quantity)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_customer_name ON transactions(customer_name)",
		// Filterable columns
		"CREATE INDEX IF NOT EXISTS idx_transactions_region ON transactions(customer_region)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_gender ON transactions(gender)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(product_category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_payment ON transactions(payment_method)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_age ON transactions(age)",
		// Case-insensitive search / tag matching
		"CREATE INDEX IF NOT EXISTS idx_transactions_name_lower ON transactions(LOWER(customer_name))",
		"CREATE INDEX IF NOT EXISTS idx_transactions_phone_lower ON transactions(LOWER(phone_number))",
		"CREATE INDEX IF NOT EXISTS idx_transactions_tags_lower ON transactions(LOWER(tags))",
		// Common combined filters
		"CREATE INDEX IF NOT EXISTS idx_transactions_region_date ON transactions(customer_region, date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_region_gender ON transactions(customer_region, gender)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates the database connection and brings the schema up to
// date, preferring SQL migrations and falling back to GORM AutoMigrate.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
