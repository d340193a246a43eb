package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingTransactionID = errors.New("transaction ID is required")
	ErrMissingDate          = errors.New("transaction date is required")
	ErrNegativeAge          = errors.New("age must be non-negative")
	ErrNegativeQuantity     = errors.New("quantity must be non-negative")
	ErrNegativeAmount       = errors.New("amounts must be non-negative")
)

// Transaction represents one sales transaction row. Rows are immutable from the
// query engine's perspective; they are owned entirely by the backing store.
type Transaction struct {
	TransactionID      string          `gorm:"type:varchar(64);primaryKey" json:"transaction_id"`
	Date               time.Time       `gorm:"not null;index" json:"date"`
	CustomerID         string          `gorm:"type:varchar(64);not null" json:"customer_id"`
	CustomerName       string          `gorm:"type:varchar(255);not null;index" json:"customer_name"`
	PhoneNumber        string          `gorm:"type:varchar(32)" json:"phone_number"`
	Gender             string          `gorm:"type:varchar(16);index" json:"gender"`
	Age                int             `gorm:"not null;index" json:"age"`
	CustomerRegion     string          `gorm:"type:varchar(64);index" json:"customer_region"`
	CustomerType       string          `gorm:"type:varchar(32)" json:"customer_type"`
	ProductID          string          `gorm:"type:varchar(64)" json:"product_id"`
	ProductName        string          `gorm:"type:varchar(255)" json:"product_name"`
	Brand              string          `gorm:"type:varchar(128)" json:"brand"`
	ProductCategory    string          `gorm:"type:varchar(64);index" json:"product_category"`
	Tags               string          `gorm:"type:text" json:"tags"`
	Quantity           int             `gorm:"not null;index" json:"quantity"`
	PricePerUnit       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_unit"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"discount_percentage"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	FinalAmount        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"final_amount"`
	PaymentMethod      string          `gorm:"type:varchar(32);index" json:"payment_method"`
	OrderStatus        string          `gorm:"type:varchar(32)" json:"order_status"`
	DeliveryType       string          `gorm:"type:varchar(32)" json:"delivery_type"`
	StoreID            string          `gorm:"type:varchar(64)" json:"store_id"`
	StoreLocation      string          `gorm:"type:varchar(128)" json:"store_location"`
	SalespersonID      string          `gorm:"type:varchar(64)" json:"salesperson_id"`
	EmployeeName       string          `gorm:"type:varchar(255)" json:"employee_name"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// Validate checks the row invariants enforced at the ingest boundary.
// The final_amount = total_amount - discount relationship is surfaced as
// data, not enforced.
func (t *Transaction) Validate() error {
	if t.TransactionID == "" {
		return ErrMissingTransactionID
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if t.Age < 0 {
		return ErrNegativeAge
	}
	if t.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if t.PricePerUnit.IsNegative() || t.TotalAmount.IsNegative() || t.FinalAmount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
