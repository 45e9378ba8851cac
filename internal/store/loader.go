package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

// insertBatch keeps each statement well under sqlite's bound-variable
// limit at the widest table.
const insertBatch = 100

// loadDataset inserts every entity set in foreign-key dependency
// order. Values travel as bound parameters only; a constraint
// violation fails the enclosing transaction.
func (s *Store) loadDataset(ctx context.Context, tx *sqlx.Tx, ds *model.Dataset) error {
	if err := s.insertCustomers(ctx, tx, ds.Customers); err != nil {
		return err
	}
	if err := s.insertProducts(ctx, tx, ds.Products); err != nil {
		return err
	}
	if err := s.insertOrders(ctx, tx, ds.Orders); err != nil {
		return err
	}
	if err := s.insertOrderItems(ctx, tx, ds.Items); err != nil {
		return err
	}
	return s.insertReviews(ctx, tx, ds.Reviews)
}

func (s *Store) insertCustomers(ctx context.Context, tx *sqlx.Tx, customers []model.Customer) error {
	for start := 0; start < len(customers); start += insertBatch {
		b := s.qb.Insert("customers").
			Columns("customer_id", "name", "email", "signup_date", "country", "is_premium")
		for _, c := range customers[start:min(start+insertBatch, len(customers))] {
			b = b.Values(c.ID, c.Name, c.Email, c.SignupDate.Format(model.TimeLayout), c.Country, c.IsPremium)
		}
		if err := execInsert(ctx, tx, b, "customers"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) insertProducts(ctx context.Context, tx *sqlx.Tx, products []model.Product) error {
	for start := 0; start < len(products); start += insertBatch {
		b := s.qb.Insert("products").
			Columns("product_id", "sku", "name", "category", "price", "cost", "created_at")
		for _, p := range products[start:min(start+insertBatch, len(products))] {
			b = b.Values(p.ID, p.SKU, p.Name, p.Category, p.Price.Float64(), p.Cost.Float64(), p.CreatedAt.Format(model.TimeLayout))
		}
		if err := execInsert(ctx, tx, b, "products"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) insertOrders(ctx context.Context, tx *sqlx.Tx, orders []model.Order) error {
	for start := 0; start < len(orders); start += insertBatch {
		b := s.qb.Insert("orders").
			Columns("order_id", "customer_id", "order_date", "status", "total_amount", "shipping_country")
		for _, o := range orders[start:min(start+insertBatch, len(orders))] {
			b = b.Values(o.ID, o.CustomerID, o.OrderDate.Format(model.TimeLayout), o.Status, o.TotalAmount.Float64(), o.ShippingCountry)
		}
		if err := execInsert(ctx, tx, b, "orders"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) insertOrderItems(ctx context.Context, tx *sqlx.Tx, items []model.OrderItem) error {
	for start := 0; start < len(items); start += insertBatch {
		b := s.qb.Insert("order_items").
			Columns("order_item_id", "order_id", "product_id", "quantity", "unit_price")
		for _, it := range items[start:min(start+insertBatch, len(items))] {
			b = b.Values(it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice.Float64())
		}
		if err := execInsert(ctx, tx, b, "order_items"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) insertReviews(ctx context.Context, tx *sqlx.Tx, reviews []model.Review) error {
	for start := 0; start < len(reviews); start += insertBatch {
		b := s.qb.Insert("reviews").
			Columns("review_id", "product_id", "customer_id", "rating", "review_text", "created_at")
		for _, r := range reviews[start:min(start+insertBatch, len(reviews))] {
			b = b.Values(r.ID, r.ProductID, r.CustomerID, r.Rating, r.Comment, r.CreatedAt.Format(model.TimeLayout))
		}
		if err := execInsert(ctx, tx, b, "reviews"); err != nil {
			return err
		}
	}
	return nil
}

type sqlizer interface {
	ToSql() (string, []interface{}, error)
}

func execInsert(ctx context.Context, tx *sqlx.Tx, b sqlizer, table string) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}
