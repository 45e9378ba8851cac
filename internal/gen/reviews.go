package gen

import (
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

const (
	reviewSpanDays      = 600
	maxReviewers        = 400
	maxReviewedProducts = 150
)

// ratingWeights indexes ratings 1 through 5; the distribution is
// deliberately skewed toward 4 and 5 stars.
var ratingWeights = []int{5, 10, 15, 30, 40}

// Reviews produces r reviews over a sampled subset of customers and
// products. Reviews are independent of purchase history; that is a
// modeling simplification, not a bug.
func Reviews(s *Stream, r int, customers []model.Customer, products []model.Product, windowEnd time.Time, spanDays int) []model.Review {
	reviewers := s.Sample(len(customers), maxReviewers)
	reviewed := s.Sample(len(products), maxReviewedProducts)

	out := make([]model.Review, 0, r)
	for i := 0; i < r; i++ {
		out = append(out, model.Review{
			ID:         int64(i + 1),
			ProductID:  products[reviewed[s.Index(len(reviewed))]].ID,
			CustomerID: customers[reviewers[s.Index(len(reviewers))]].ID,
			Rating:     s.WeightedIndex(ratingWeights) + 1,
			Comment:    reviewComment(s),
			CreatedAt:  s.DateWithin(windowEnd, spanDays),
		})
	}
	return out
}
