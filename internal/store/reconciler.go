package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// totalTolerance is the maximum drift allowed between an order's
// stated total and the sum over its line items, in currency units.
const totalTolerance = "0.01"

// Reconcile recomputes each order's total from its line items and
// overwrites any stored total that drifts beyond the tolerance,
// returning the number of corrections. It runs inside the load
// transaction and is idempotent: a second pass over a reconciled
// store corrects nothing.
//
// This is deliberately a fresh SQL implementation of the sum the
// generator performs in memory, so it verifies rather than restates
// the generator's arithmetic.
func Reconcile(ctx context.Context, tx *sqlx.Tx) (int, error) {
	type mismatch struct {
		OrderID  int64   `db:"order_id"`
		Computed float64 `db:"computed"`
	}

	query := `
		SELECT o.order_id, COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS computed
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.order_id
		GROUP BY o.order_id, o.total_amount
		HAVING ABS(o.total_amount - COALESCE(SUM(oi.quantity * oi.unit_price), 0)) > ` + totalTolerance

	var mismatches []mismatch
	if err := sqlx.SelectContext(ctx, tx, &mismatches, query); err != nil {
		return 0, fmt.Errorf("failed to detect total mismatches: %w", err)
	}

	update := tx.Rebind("UPDATE orders SET total_amount = ROUND(CAST(? AS NUMERIC), 2) WHERE order_id = ?")
	for _, m := range mismatches {
		if _, err := tx.ExecContext(ctx, update, m.Computed, m.OrderID); err != nil {
			return 0, fmt.Errorf("failed to correct total for order %d: %w", m.OrderID, err)
		}
	}
	return len(mismatches), nil
}
