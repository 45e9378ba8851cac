package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the rendering used for every date column in the
// interchange files and the store (ISO-8601, second precision).
const TimeLayout = "2006-01-02T15:04:05"

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusCancelled = "cancelled"
	StatusReturned  = "returned"
)

// OrderStatuses lists every valid order status, in the order the
// generator's weight table refers to them.
var OrderStatuses = []string{
	StatusPending,
	StatusPaid,
	StatusShipped,
	StatusCancelled,
	StatusReturned,
}

// Cents holds a currency amount as an integer number of cents so that
// sums over line items stay exact.
type Cents int64

func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float64 returns the amount in currency units, for binding into
// NUMERIC columns.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// ParseCents parses a decimal rendered with exactly two fractional
// digits, the only form the serializer emits.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || len(frac) != 2 {
		return 0, fmt.Errorf("invalid decimal %q: expected two fractional digits", s)
	}
	// ParseUint keeps stray signs out of either part, so "12.-5" is an
	// error rather than a silently wrong amount.
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	f, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	v := int64(w)*100 + int64(f)
	if neg {
		v = -v
	}
	return Cents(v), nil
}

type Customer struct {
	ID         string    `db:"customer_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	SignupDate time.Time `db:"signup_date"`
	Country    string    `db:"country"`
	IsPremium  bool      `db:"is_premium"`
}

type Product struct {
	ID        int64     `db:"product_id"`
	SKU       string    `db:"sku"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Price     Cents     `db:"price"`
	Cost      Cents     `db:"cost"`
	CreatedAt time.Time `db:"created_at"`
}

type Order struct {
	ID              int64     `db:"order_id"`
	CustomerID      string    `db:"customer_id"`
	OrderDate       time.Time `db:"order_date"`
	Status          string    `db:"status"`
	TotalAmount     Cents     `db:"total_amount"`
	ShippingCountry string    `db:"shipping_country"`
}

type OrderItem struct {
	ID        int64 `db:"order_item_id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
	UnitPrice Cents `db:"unit_price"`
}

type Review struct {
	ID         int64     `db:"review_id"`
	ProductID  int64     `db:"product_id"`
	CustomerID string    `db:"customer_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"review_text"`
	CreatedAt  time.Time `db:"created_at"`
}

// Dataset is one complete generation run: every entity set, with all
// cross-references resolving inside the same struct.
type Dataset struct {
	Customers []Customer
	Products  []Product
	Orders    []Order
	Items     []OrderItem
	Reviews   []Review
}
