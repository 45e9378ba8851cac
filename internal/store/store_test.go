package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/martgen/internal/gen"
	"github.com/Lumos-Labs-HQ/martgen/internal/model"
	"github.com/Lumos-Labs-HQ/martgen/internal/report"
)

var testWindowEnd = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

func testDataset(seed int64) *model.Dataset {
	return gen.Build(gen.Params{
		Seed:      seed,
		Customers: 20,
		Products:  10,
		Orders:    30,
		Reviews:   15,
		WindowEnd: testWindowEnd,
	})
}

func openMemoryStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func rowCount(t *testing.T, sum *report.Summary, table string) int {
	t.Helper()
	for _, c := range sum.Rows {
		if c.Name == table {
			return c.N
		}
	}
	t.Fatalf("table %s missing from summary", table)
	return 0
}

func TestIngestCleanDataset(t *testing.T) {
	s := openMemoryStore(t)
	ds := testDataset(42)

	sum, err := s.Ingest(context.Background(), ds, false)
	require.NoError(t, err)

	assert.Equal(t, "write", sum.Mode)
	assert.Zero(t, sum.Corrections, "an uncorrupted dataset needs no corrections")
	assert.True(t, sum.Clean())
	assert.Equal(t, len(ds.Customers), rowCount(t, sum, "customers"))
	assert.Equal(t, len(ds.Products), rowCount(t, sum, "products"))
	assert.Equal(t, len(ds.Orders), rowCount(t, sum, "orders"))
	assert.Equal(t, len(ds.Items), rowCount(t, sum, "order_items"))
	assert.Equal(t, len(ds.Reviews), rowCount(t, sum, "reviews"))
}

func TestIngestReplacesPriorStore(t *testing.T) {
	s := openMemoryStore(t)

	_, err := s.Ingest(context.Background(), testDataset(1), false)
	require.NoError(t, err)

	small := gen.Build(gen.Params{
		Seed: 2, Customers: 5, Products: 4, Orders: 6, Reviews: 3,
		WindowEnd: testWindowEnd,
	})
	sum, err := s.Ingest(context.Background(), small, false)
	require.NoError(t, err)
	assert.Equal(t, 5, rowCount(t, sum, "customers"), "reload must replace, not append")
}

func TestDryRunCommitsNothing(t *testing.T) {
	s := openMemoryStore(t)

	sum, err := s.Ingest(context.Background(), testDataset(42), true)
	require.NoError(t, err)
	assert.Equal(t, "dry-run", sum.Mode)
	assert.True(t, sum.Clean())

	var tables int
	err = s.DB().Get(&tables, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'")
	require.NoError(t, err)
	assert.Zero(t, tables, "dry run must leave no tables behind")
}

func TestReconcilerFixesCorruptedTotal(t *testing.T) {
	s := openMemoryStore(t)
	ds := testDataset(42)

	// simulate corruption between generation and load: one stated
	// total drifts by 5.00
	ds.Orders[0].TotalAmount += 500

	sum, err := s.Ingest(context.Background(), ds, false)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Corrections)
	assert.True(t, sum.Clean())

	var diff float64
	err = s.DB().Get(&diff, `
		SELECT ABS(o.total_amount - COALESCE(SUM(oi.quantity * oi.unit_price), 0))
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.order_id
		WHERE o.order_id = ?
		GROUP BY o.order_id, o.total_amount`, ds.Orders[0].ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, diff, 1e-9, "stored total must equal the recomputed sum exactly")
}

func TestReconcileIsIdempotent(t *testing.T) {
	s := openMemoryStore(t)
	ds := testDataset(42)
	ds.Orders[3].TotalAmount = 0
	ds.Orders[7].TotalAmount += 1234

	sum, err := s.Ingest(context.Background(), ds, false)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Corrections)

	tx, err := s.DB().BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	defer tx.Rollback()

	again, err := Reconcile(context.Background(), tx)
	require.NoError(t, err)
	assert.Zero(t, again, "second pass over a reconciled store must correct nothing")
}

func TestConstraintViolationRollsBackEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atomicity.db")
	s, err := Open("sqlite", path)
	require.NoError(t, err)
	defer s.Close()

	ds := testDataset(42)
	// dangling product reference on the very last line item
	ds.Items[len(ds.Items)-1].ProductID = 999999

	_, err = s.Ingest(context.Background(), ds, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order_items")

	var tables int
	err = s.DB().Get(&tables, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'")
	require.NoError(t, err)
	assert.Zero(t, tables, "a failed load must leave no partially loaded store")
}

func TestRatingCheckConstraintEnforced(t *testing.T) {
	s := openMemoryStore(t)
	ds := testDataset(42)
	ds.Reviews[0].Rating = 9

	_, err := s.Ingest(context.Background(), ds, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reviews")
}

func TestAuditAfterCommitIsReadOnlyAndClean(t *testing.T) {
	s := openMemoryStore(t)
	ds := testDataset(5)

	_, err := s.Ingest(context.Background(), ds, false)
	require.NoError(t, err)

	sum, err := Audit(context.Background(), s.DB())
	require.NoError(t, err)
	assert.True(t, sum.Clean())
	assert.Zero(t, sum.BadCardinality)
	for _, c := range sum.Nulls {
		assert.Zero(t, c.N, "null count %s", c.Name)
	}
	for _, c := range sum.FKViolations {
		assert.Zero(t, c.N, "violation count %s", c.Name)
	}
}

func TestOpenRejectsUnknownProvider(t *testing.T) {
	_, err := Open("oracle", "whatever")
	require.Error(t, err)
}
