// Package query runs ad-hoc analytic SQL against a committed store.
// It is pure reporting: no invariants of its own beyond correct joins.
package query

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
)

// previewRows caps how many rows of each result set get printed.
const previewRows = 10

// RunFile executes the semicolon-separated statements in path and
// writes a preview of each result set to w. A failing statement is
// reported and the rest still run.
func RunFile(ctx context.Context, db *sqlx.DB, path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read query file: %w", err)
	}

	stmts := Split(string(data))
	if len(stmts) == 0 {
		return fmt.Errorf("no statements found in %s", path)
	}

	for i, stmt := range stmts {
		fmt.Fprintf(w, "\n=== Query %d ===\n", i+1)
		if err := runOne(ctx, db, stmt, w); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
	return nil
}

func runOne(ctx context.Context, db *sqlx.DB, stmt string, w io.Writer) error {
	rows, err := db.QueryxContext(ctx, stmt)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Join(cols, " | "))

	printed, total := 0, 0
	for rows.Next() {
		total++
		if printed >= previewRows {
			continue
		}
		vals, err := rows.SliceScan()
		if err != nil {
			return err
		}
		fields := make([]string, len(vals))
		for i, v := range vals {
			if v == nil {
				fields[i] = "NULL"
				continue
			}
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			fields[i] = fmt.Sprintf("%v", v)
		}
		fmt.Fprintln(w, strings.Join(fields, " | "))
		printed++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if total > printed {
		fmt.Fprintf(w, "... (%d more rows)\n", total-printed)
	}
	if total == 0 {
		fmt.Fprintln(w, "(no rows)")
	}
	return nil
}

// Split breaks a SQL file into statements on semicolons, dropping
// line comments and blank statements.
func Split(sqlText string) []string {
	var stmts []string
	var current []string

	flush := func() {
		stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(strings.Join(current, "\n")), ";"))
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(sqlText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current = append(current, line)
		if strings.HasSuffix(trimmed, ";") {
			flush()
		}
	}
	flush()
	return stmts
}
