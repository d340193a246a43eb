// Package ingest reads sales transaction rows from CSV exports. Source
// files come in two header variants (human-readable "Customer Region" and
// normalized "customer_region"); headers are normalized once here so
// nothing downstream ever sees source-specific naming.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"sales-insights/internal/models"

	"github.com/shopspring/decimal"
)

// dateLayouts accepted for the date column, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// NormalizeHeader maps a raw CSV header to its canonical column name:
// trimmed, lowercased, spaces and dashes collapsed to underscores.
func NormalizeHeader(header string) string {
	h := strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	h = strings.ToLower(h)
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// ReadFile loads all transactions from a CSV file.
func ReadFile(path string) ([]models.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// Read parses transactions from CSV data. The first row is the header;
// unknown columns are ignored. Numeric fields that fail to parse coerce to
// zero (dirty exports are common); an unparseable date is an error since the
// date drives sorting and range filters.
func Read(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = NormalizeHeader(h)
	}

	var transactions []models.Transaction
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row, err)
		}
		row++

		var t models.Transaction
		for i, value := range fields {
			if i >= len(columns) {
				break
			}
			if err := setColumn(&t, columns[i], strings.TrimSpace(value)); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		}

		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

func setColumn(t *models.Transaction, column, value string) error {
	switch column {
	case "transaction_id":
		t.TransactionID = value
	case "date":
		parsed, err := parseDate(value)
		if err != nil {
			return err
		}
		t.Date = parsed
	case "customer_id":
		t.CustomerID = value
	case "customer_name":
		t.CustomerName = value
	case "phone_number":
		t.PhoneNumber = value
	case "gender":
		t.Gender = value
	case "age":
		t.Age = coerceInt(value)
	case "customer_region":
		t.CustomerRegion = value
	case "customer_type":
		t.CustomerType = value
	case "product_id":
		t.ProductID = value
	case "product_name":
		t.ProductName = value
	case "brand":
		t.Brand = value
	case "product_category":
		t.ProductCategory = value
	case "tags":
		t.Tags = value
	case "quantity":
		t.Quantity = coerceInt(value)
	case "price_per_unit":
		t.PricePerUnit = coerceDecimal(value)
	case "discount_percentage":
		t.DiscountPercentage = coerceDecimal(value)
	case "total_amount":
		t.TotalAmount = coerceDecimal(value)
	case "final_amount":
		t.FinalAmount = coerceDecimal(value)
	case "payment_method":
		t.PaymentMethod = value
	case "order_status":
		t.OrderStatus = value
	case "delivery_type":
		t.DeliveryType = value
	case "store_id":
		t.StoreID = value
	case "store_location":
		t.StoreLocation = value
	case "salesperson_id":
		t.SalespersonID = value
	case "employee_name":
		t.EmployeeName = value
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", value)
}

func coerceInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func coerceDecimal(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
