package gen

import (
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

const (
	orderSpanDays = 730
	minLineItems  = 1
	maxLineItems  = 6
	maxQuantity   = 5
)

// statusWeights follows the order of model.OrderStatuses: most orders
// end up paid or shipped.
var statusWeights = []int{5, 60, 25, 5, 5}

// Orders synthesizes k orders and their line items. Each order draws
// its line items first and derives the stated total as the exact cent
// sum of quantity times unit price, so header and items agree at the
// source. Products within one order are distinct; the unit price is
// the product's list price.
func Orders(s *Stream, k int, customers []model.Customer, products []model.Product, windowEnd time.Time, spanDays int) ([]model.Order, []model.OrderItem) {
	orders := make([]model.Order, 0, k)
	items := make([]model.OrderItem, 0, k*(minLineItems+maxLineItems)/2)

	itemID := int64(1)
	for i := 0; i < k; i++ {
		orderID := int64(i + 1)
		cust := customers[s.Index(len(customers))]
		orderDate := s.DateWithin(windowEnd, spanDays)
		status := model.OrderStatuses[s.WeightedIndex(statusWeights)]

		var total model.Cents
		for _, pi := range s.Sample(len(products), s.IntBetween(minLineItems, maxLineItems)) {
			p := products[pi]
			qty := s.IntBetween(1, maxQuantity)
			items = append(items, model.OrderItem{
				ID:        itemID,
				OrderID:   orderID,
				ProductID: p.ID,
				Quantity:  qty,
				UnitPrice: p.Price,
			})
			itemID++
			total += model.Cents(qty) * p.Price
		}

		orders = append(orders, model.Order{
			ID:              orderID,
			CustomerID:      cust.ID,
			OrderDate:       orderDate,
			Status:          status,
			TotalAmount:     total,
			ShippingCountry: cust.Country,
		})
	}
	return orders, items
}
