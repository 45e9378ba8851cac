package gen

import (
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

// By default customers sign up over the three years before the window
// end.
const customerSignupSpanDays = 1095

// Customers produces n customer records. Roughly a quarter carry the
// premium flag.
func Customers(s *Stream, n int, windowEnd time.Time, spanDays int) []model.Customer {
	out := make([]model.Customer, 0, n)
	for i := 0; i < n; i++ {
		name := personName(s)
		out = append(out, model.Customer{
			ID:         s.UUID(),
			Name:       name,
			Email:      emailFor(s, name),
			SignupDate: s.DateWithin(windowEnd, spanDays),
			Country:    country(s),
			IsPremium:  s.Index(4) == 0,
		})
	}
	return out
}
