package query

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/martgen/internal/gen"
	"github.com/Lumos-Labs-HQ/martgen/internal/store"
)

func TestSplit(t *testing.T) {
	stmts := Split(`
-- Query 1: row counts
SELECT COUNT(*) FROM orders;

-- Query 2
SELECT status, COUNT(*)
FROM orders
GROUP BY status;
`)
	require.Len(t, stmts, 2)
	assert.Equal(t, "SELECT COUNT(*) FROM orders", stmts[0])
	assert.True(t, strings.HasPrefix(stmts[1], "SELECT status"))
	assert.False(t, strings.HasSuffix(stmts[1], ";"))
}

func TestSplitIgnoresCommentsAndBlanks(t *testing.T) {
	assert.Empty(t, Split("-- nothing here\n\n-- still nothing\n"))
}

func TestRunFilePreviewsResults(t *testing.T) {
	s, err := store.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer s.Close()

	ds := gen.Build(gen.Params{
		Seed: 42, Customers: 10, Products: 6, Orders: 30, Reviews: 5,
		WindowEnd: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	_, err = s.Ingest(context.Background(), ds, false)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "queries.sql")
	require.NoError(t, os.WriteFile(path, []byte(
		"-- order counts by status\nSELECT status, COUNT(*) AS n FROM orders GROUP BY status;\n"+
			"SELECT order_id FROM orders ORDER BY order_id;\n"), 0644))

	var buf strings.Builder
	require.NoError(t, RunFile(context.Background(), s.DB(), path, &buf))

	out := buf.String()
	assert.Contains(t, out, "status | n")
	assert.Contains(t, out, "=== Query 2 ===")
	assert.Contains(t, out, "(20 more rows)")
}

func TestRunFileReportsBadStatementAndContinues(t *testing.T) {
	s, err := store.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.DB().Exec("CREATE TABLE t (x INTEGER)")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "queries.sql")
	require.NoError(t, os.WriteFile(path, []byte(
		"SELECT * FROM missing_table;\nSELECT COUNT(*) FROM t;\n"), 0644))

	var buf strings.Builder
	require.NoError(t, RunFile(context.Background(), s.DB(), path, &buf))
	assert.Contains(t, buf.String(), "error:")
	assert.Contains(t, buf.String(), "=== Query 2 ===")
}
