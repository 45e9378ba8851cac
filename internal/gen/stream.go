package gen

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Stream is the single deterministic random source behind a generation
// run. Every stage draws from it sequentially in a fixed order
// (customers, products, orders with their line items, reviews), so two
// runs with the same seed produce identical datasets. No generator may
// consult any other entropy source or the wall clock.
type Stream struct {
	r *rand.Rand
}

func NewStream(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// IntBetween returns a uniform integer in [lo, hi].
func (s *Stream) IntBetween(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// Index returns a uniform index in [0, n).
func (s *Stream) Index(n int) int {
	return s.r.Intn(n)
}

// WeightedIndex picks an index with probability proportional to its
// weight. Weights must be positive.
func (s *Stream) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := s.r.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// Sample returns k distinct indices drawn from [0, n). When k exceeds n
// it returns all n indices.
func (s *Stream) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	return s.r.Perm(n)[:k]
}

// DateWithin returns end minus a uniform number of whole days in
// [0, maxDaysBack].
func (s *Stream) DateWithin(end time.Time, maxDaysBack int) time.Time {
	return end.AddDate(0, 0, -s.r.Intn(maxDaysBack+1))
}

// UUID derives a version-4 UUID from the stream, keeping identifiers
// reproducible across runs with the same seed.
func (s *Stream) UUID() string {
	id, err := uuid.NewRandomFromReader(s.r)
	if err != nil {
		// rand.Rand.Read never fails
		panic(err)
	}
	return id.String()
}
