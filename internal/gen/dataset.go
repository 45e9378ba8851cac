package gen

import (
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

// Params describes one generation run. Changing any field only changes
// volume and content, never the referential shape of the output.
type Params struct {
	Seed      int64
	Customers int
	Products  int
	Orders    int
	Reviews   int
	// WindowEnd plays the role of "now". It is configuration, not the
	// wall clock, so dates are part of the deterministic output.
	WindowEnd time.Time
	Spans     Spans
}

// Spans bounds how many days before the window end each entity's dates
// may fall. A zero field takes its default.
type Spans struct {
	Customers int
	Products  int
	Orders    int
	Reviews   int
}

func DefaultSpans() Spans {
	return Spans{
		Customers: customerSignupSpanDays,
		Products:  productAgeSpanDays,
		Orders:    orderSpanDays,
		Reviews:   reviewSpanDays,
	}
}

func (sp Spans) withDefaults() Spans {
	def := DefaultSpans()
	if sp.Customers <= 0 {
		sp.Customers = def.Customers
	}
	if sp.Products <= 0 {
		sp.Products = def.Products
	}
	if sp.Orders <= 0 {
		sp.Orders = def.Orders
	}
	if sp.Reviews <= 0 {
		sp.Reviews = def.Reviews
	}
	return sp
}

// Build runs every generator stage against one seeded stream in a
// fixed order, making the whole dataset a pure function of Params.
func Build(p Params) *model.Dataset {
	s := NewStream(p.Seed)
	spans := p.Spans.withDefaults()

	customers := Customers(s, p.Customers, p.WindowEnd, spans.Customers)
	products := Products(s, p.Products, p.WindowEnd, spans.Products)
	orders, items := Orders(s, p.Orders, customers, products, p.WindowEnd, spans.Orders)
	reviews := Reviews(s, p.Reviews, customers, products, p.WindowEnd, spans.Reviews)

	return &model.Dataset{
		Customers: customers,
		Products:  products,
		Orders:    orders,
		Items:     items,
		Reviews:   reviews,
	}
}
