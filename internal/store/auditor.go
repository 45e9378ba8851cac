package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Lumos-Labs-HQ/martgen/internal/report"
)

var auditTables = []string{"customers", "products", "orders", "order_items", "reviews"}

var nullChecks = []struct {
	label string
	query string
}{
	{"orders.customer_id", "SELECT COUNT(*) FROM orders WHERE customer_id IS NULL"},
	{"order_items.order_id", "SELECT COUNT(*) FROM order_items WHERE order_id IS NULL"},
	{"order_items.product_id", "SELECT COUNT(*) FROM order_items WHERE product_id IS NULL"},
	{"reviews.product_id", "SELECT COUNT(*) FROM reviews WHERE product_id IS NULL"},
	{"reviews.customer_id", "SELECT COUNT(*) FROM reviews WHERE customer_id IS NULL"},
}

// fkChecks anti-joins each relationship; any hit is a dangling
// reference the constraints should have made impossible.
var fkChecks = []struct {
	label string
	query string
}{
	{"orders.customer_id", `SELECT COUNT(*) FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.customer_id
		WHERE c.customer_id IS NULL`},
	{"order_items.order_id", `SELECT COUNT(*) FROM order_items oi
		LEFT JOIN orders o ON oi.order_id = o.order_id
		WHERE o.order_id IS NULL`},
	{"order_items.product_id", `SELECT COUNT(*) FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.product_id
		WHERE p.product_id IS NULL`},
	{"reviews.product_id", `SELECT COUNT(*) FROM reviews r
		LEFT JOIN products p ON r.product_id = p.product_id
		WHERE p.product_id IS NULL`},
	{"reviews.customer_id", `SELECT COUNT(*) FROM reviews r
		LEFT JOIN customers c ON r.customer_id = c.customer_id
		WHERE c.customer_id IS NULL`},
}

const cardinalityQuery = `SELECT COUNT(*) FROM (
	SELECT o.order_id
	FROM orders o
	LEFT JOIN order_items oi ON oi.order_id = o.order_id
	GROUP BY o.order_id
	HAVING COUNT(oi.order_item_id) NOT BETWEEN 1 AND 6
) AS bad`

// Audit is read-only: row counts per table, NULL counts on key
// columns, dangling-reference counts, and orders whose line-item
// count falls outside 1..6. Every non-zero finding past the row
// counts indicates a generator or loader defect, not bad input.
func Audit(ctx context.Context, q sqlx.QueryerContext) (*report.Summary, error) {
	sum := &report.Summary{}

	for _, table := range auditTables {
		var n int
		if err := sqlx.GetContext(ctx, q, &n, "SELECT COUNT(*) FROM "+table); err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		sum.Rows = append(sum.Rows, report.Count{Name: table, N: n})
	}

	for _, check := range nullChecks {
		var n int
		if err := sqlx.GetContext(ctx, q, &n, check.query); err != nil {
			return nil, fmt.Errorf("null check %s: %w", check.label, err)
		}
		sum.Nulls = append(sum.Nulls, report.Count{Name: check.label, N: n})
	}

	for _, check := range fkChecks {
		var n int
		if err := sqlx.GetContext(ctx, q, &n, check.query); err != nil {
			return nil, fmt.Errorf("foreign key check %s: %w", check.label, err)
		}
		sum.FKViolations = append(sum.FKViolations, report.Count{Name: check.label, N: n})
	}

	if err := sqlx.GetContext(ctx, q, &sum.BadCardinality, cardinalityQuery); err != nil {
		return nil, fmt.Errorf("cardinality check: %w", err)
	}

	return sum, nil
}
