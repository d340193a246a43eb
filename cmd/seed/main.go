// Command seed populates the transactions table, either from a CSV export or
// with generated sample data.
package main

import (
	"log"

	"sales-insights/internal/config"
	"sales-insights/internal/database"
	"sales-insights/internal/ingest"
	"sales-insights/internal/models"
	"sales-insights/internal/services"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

const insertBatchSize = 1000

func main() {
	csvPath := flag.String("csv", "", "path to a CSV export to load")
	generate := flag.Int("generate", 0, "number of sample transactions to generate instead of loading a CSV")
	seed := flag.Int64("seed", 42, "random seed for generated data")
	truncate := flag.Bool("truncate", false, "empty the transactions table before inserting")
	flag.Parse()

	if *csvPath == "" && *generate <= 0 {
		log.Fatal("nothing to do: pass --csv <file> or --generate <n>")
	}
	if *csvPath != "" && *generate > 0 {
		log.Fatal("--csv and --generate are mutually exclusive")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	var transactions []models.Transaction
	if *csvPath != "" {
		transactions, err = ingest.ReadFile(*csvPath)
		if err != nil {
			log.Fatalf("Failed to load CSV: %v", err)
		}
		log.Printf("Loaded %d transactions from %s", len(transactions), *csvPath)
	} else {
		generator := services.NewSampleDataGenerator(*seed)
		transactions = generator.Generate(*generate)
		log.Printf("Generated %d sample transactions (seed %d)", len(transactions), *seed)
	}

	if *truncate {
		if err := db.Exec("DELETE FROM transactions").Error; err != nil {
			log.Fatalf("Failed to truncate transactions table: %v", err)
		}
		log.Println("Truncated transactions table")
	}

	if err := db.CreateInBatches(transactions, insertBatchSize).Error; err != nil {
		log.Fatalf("Failed to insert transactions: %v", err)
	}

	var count int64
	if err := db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count transactions: %v", err)
	}
	log.Printf("Done. Table now holds %d transactions", count)
}
