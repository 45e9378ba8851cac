package gen

import (
	"math"
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

const (
	productAgeSpanDays = 730
	minPriceCents      = 999
	maxPriceCents      = 99999
)

// Products produces n product records across the fixed category set.
// Cost is always strictly below price so margin metrics downstream
// stay positive.
func Products(s *Stream, n int, windowEnd time.Time, spanDays int) []model.Product {
	out := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		id := int64(i + 1)
		category := Categories[s.Index(len(Categories))]
		price := model.Cents(s.IntBetween(minPriceCents, maxPriceCents))
		cost := model.Cents(math.Round(float64(price) * (0.3 + 0.4*s.Float64())))
		if cost >= price {
			cost = price - 1
		}
		out = append(out, model.Product{
			ID:        id,
			SKU:       skuFor(s, id),
			Name:      productName(s, category),
			Category:  category,
			Price:     price,
			Cost:      cost,
			CreatedAt: s.DateWithin(windowEnd, spanDays),
		})
	}
	return out
}
