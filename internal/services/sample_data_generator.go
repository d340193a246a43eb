package services

import (
	"fmt"
	"math/rand"
	"time"

	"sales-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// productInfo is one entry of the generator's product pool.
type productInfo struct {
	Name     string
	Brand    string
	Category string
	Tags     string
}

type sampleDataGenerator struct {
	faker       *gofakeit.Faker
	rng         *rand.Rand
	productPool []productInfo
}

var (
	sampleRegions        = []string{"North", "South", "East", "West", "Central"}
	sampleGenders        = []string{"Male", "Female", "Other"}
	sampleCustomerTypes  = []string{"New", "Returning", "Loyalty Member"}
	samplePaymentMethods = []string{"Credit Card", "Debit Card", "Cash", "UPI", "Wallet"}
	sampleOrderStatuses  = []string{"Delivered", "Shipped", "Pending", "Cancelled", "Returned"}
	sampleDeliveryTypes  = []string{"Standard", "Express", "Same-Day", "Store Pickup"}
)

// NewSampleDataGenerator creates a generator seeded for reproducible output.
func NewSampleDataGenerator(seed int64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		faker:       gofakeit.New(uint64(seed)),
		rng:         rand.New(rand.NewSource(seed)),
		productPool: initializeProductPool(),
	}
}

func initializeProductPool() []productInfo {
	return []productInfo{
		{"Wireless Earbuds", "SoundCore", "Electronics", "Electronics, Audio, Gift"},
		{"Smart Watch", "Pulse", "Electronics", "Electronics, Wearable, Fitness"},
		{"Bluetooth Speaker", "BoomBox", "Electronics", "Electronics, Audio, Outdoor"},
		{"LED Monitor 27\"", "ViewMax", "Electronics", "Electronics, Office"},
		{"Running Shoes", "Stride", "Footwear", "Sports, Fitness, Outdoor"},
		{"Leather Boots", "Trailhead", "Footwear", "Fashion, Winter"},
		{"Cotton T-Shirt", "Everyday", "Apparel", "Fashion, Casual, Summer"},
		{"Down Jacket", "NorthPeak", "Apparel", "Fashion, Winter, Outdoor"},
		{"Yoga Mat", "ZenFit", "Sports", "Fitness, Wellness"},
		{"Dumbbell Set", "IronWorks", "Sports", "Fitness, Home Gym"},
		{"Espresso Machine", "BrewMaster", "Home & Kitchen", "Kitchen, Coffee, Gift"},
		{"Air Fryer", "CrispPro", "Home & Kitchen", "Kitchen, Appliance"},
		{"Scented Candle Set", "Hearth", "Home & Kitchen", "Home Decor, Gift"},
		{"Desk Lamp", "Lumina", "Home & Kitchen", "Home Decor, Office"},
		{"Mystery Novel", "Inkwell Press", "Books", "Books, Fiction, Gift"},
		{"Cookbook", "Inkwell Press", "Books", "Books, Kitchen"},
		{"Face Serum", "GlowLab", "Beauty", "Beauty, Skincare, Gift"},
		{"Shampoo Bar", "GlowLab", "Beauty", "Beauty, Eco-Friendly"},
		{"Building Blocks", "PlayForge", "Toys", "Toys, Kids, Gift"},
		{"Puzzle 1000pc", "PlayForge", "Toys", "Toys, Family"},
	}
}

// Generate produces n sales transactions spanning the last two years.
func (g *sampleDataGenerator) Generate(n int) []models.Transaction {
	transactions := make([]models.Transaction, 0, n)
	now := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < n; i++ {
		product := g.productPool[g.rng.Intn(len(g.productPool))]

		quantity := g.rng.Intn(5) + 1
		price := decimal.NewFromFloat(g.faker.Price(5, 500)).Round(2)
		total := price.Mul(decimal.NewFromInt(int64(quantity)))
		discountPct := decimal.NewFromInt(int64(g.rng.Intn(6) * 5))
		discount := total.Mul(discountPct).Div(decimal.NewFromInt(100)).Round(2)

		transactions = append(transactions, models.Transaction{
			TransactionID:      fmt.Sprintf("TXN-%06d", i+1),
			Date:               now.AddDate(0, 0, -g.rng.Intn(730)),
			CustomerID:         fmt.Sprintf("CUST-%05d", g.rng.Intn(n/2+1)+1),
			CustomerName:       g.faker.Name(),
			PhoneNumber:        g.faker.Phone(),
			Gender:             pick(g.rng, sampleGenders),
			Age:                g.rng.Intn(63) + 18,
			CustomerRegion:     pick(g.rng, sampleRegions),
			CustomerType:       pick(g.rng, sampleCustomerTypes),
			ProductID:          fmt.Sprintf("PROD-%04d", g.rng.Intn(len(g.productPool))+1),
			ProductName:        product.Name,
			Brand:              product.Brand,
			ProductCategory:    product.Category,
			Tags:               product.Tags,
			Quantity:           quantity,
			PricePerUnit:       price,
			DiscountPercentage: discountPct,
			TotalAmount:        total,
			FinalAmount:        total.Sub(discount),
			PaymentMethod:      pick(g.rng, samplePaymentMethods),
			OrderStatus:        pick(g.rng, sampleOrderStatuses),
			DeliveryType:       pick(g.rng, sampleDeliveryTypes),
			StoreID:            fmt.Sprintf("STORE-%03d", g.rng.Intn(40)+1),
			StoreLocation:      g.faker.City(),
			SalespersonID:      fmt.Sprintf("EMP-%04d", g.rng.Intn(120)+1),
			EmployeeName:       g.faker.Name(),
		})
	}

	return transactions
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
