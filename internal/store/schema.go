package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaTable declares one entity table: DDL, plus the secondary
// indexes the analytic layer joins and filters on.
type schemaTable struct {
	name    string
	create  string
	indexes []string
}

// schemaTables is ordered so parents come before children; drops run
// in reverse. The DDL sticks to types both sqlite and postgres accept.
var schemaTables = []schemaTable{
	{
		name: "customers",
		create: `CREATE TABLE customers (
			customer_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			signup_date TEXT NOT NULL,
			country TEXT NOT NULL,
			is_premium BOOLEAN NOT NULL
		)`,
	},
	{
		name: "products",
		create: `CREATE TABLE products (
			product_id INTEGER PRIMARY KEY,
			sku TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price NUMERIC(10, 2) NOT NULL,
			cost NUMERIC(10, 2) NOT NULL,
			created_at TEXT NOT NULL
		)`,
		indexes: []string{
			"CREATE INDEX idx_products_category ON products(category)",
		},
	},
	{
		name: "orders",
		create: `CREATE TABLE orders (
			order_id INTEGER PRIMARY KEY,
			customer_id TEXT NOT NULL,
			order_date TEXT NOT NULL,
			status TEXT NOT NULL,
			total_amount NUMERIC(10, 2) NOT NULL,
			shipping_country TEXT NOT NULL,
			FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
		)`,
		indexes: []string{
			"CREATE INDEX idx_orders_customer_id ON orders(customer_id)",
			"CREATE INDEX idx_orders_order_date ON orders(order_date)",
			"CREATE INDEX idx_orders_status ON orders(status)",
		},
	},
	{
		name: "order_items",
		create: `CREATE TABLE order_items (
			order_item_id INTEGER PRIMARY KEY,
			order_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			unit_price NUMERIC(10, 2) NOT NULL CHECK (unit_price >= 0),
			FOREIGN KEY (order_id) REFERENCES orders(order_id),
			FOREIGN KEY (product_id) REFERENCES products(product_id)
		)`,
		indexes: []string{
			"CREATE INDEX idx_order_items_order_id ON order_items(order_id)",
			"CREATE INDEX idx_order_items_product_id ON order_items(product_id)",
		},
	},
	{
		name: "reviews",
		create: `CREATE TABLE reviews (
			review_id INTEGER PRIMARY KEY,
			product_id INTEGER NOT NULL,
			customer_id TEXT NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			review_text TEXT NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY (product_id) REFERENCES products(product_id),
			FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
		)`,
		indexes: []string{
			"CREATE INDEX idx_reviews_product_id ON reviews(product_id)",
			"CREATE INDEX idx_reviews_customer_id ON reviews(customer_id)",
		},
	},
}

// createSchema fully replaces any prior schema: children are dropped
// first, then every table and index is recreated. Running inside the
// load transaction keeps a dry run from leaving anything behind.
func createSchema(ctx context.Context, tx *sqlx.Tx) error {
	for i := len(schemaTables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+schemaTables[i].name); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schemaTables[i].name, err)
		}
	}
	for _, t := range schemaTables {
		if _, err := tx.ExecContext(ctx, t.create); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.name, err)
		}
		for _, idx := range t.indexes {
			if _, err := tx.ExecContext(ctx, idx); err != nil {
				return fmt.Errorf("failed to create index on %s: %w", t.name, err)
			}
		}
	}
	return nil
}
