package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Count pairs a label (table or column) with an observed count.
type Count struct {
	Name string
	N    int
}

// Summary is the structured outcome of an ingestion run: row counts
// per table, the reconciliation correction count, and the integrity
// audit results. It never carries row-level data.
type Summary struct {
	Mode           string
	Rows           []Count
	Corrections    int
	Nulls          []Count
	FKViolations   []Count
	BadCardinality int
}

// Clean reports whether the audit found no residual integrity
// violations. Corrections do not count against cleanliness; they are
// the pipeline's designed self-healing path.
func (s *Summary) Clean() bool {
	for _, c := range s.Nulls {
		if c.N != 0 {
			return false
		}
	}
	for _, c := range s.FKViolations {
		if c.N != 0 {
			return false
		}
	}
	return s.BadCardinality == 0
}

// Print renders the summary for a terminal.
func Print(s *Summary) {
	color.Cyan("=== Integrity Report (%s) ===", s.Mode)

	fmt.Println("\nRow counts:")
	for _, c := range s.Rows {
		fmt.Printf("  %-12s %d\n", c.Name, c.N)
	}

	fmt.Printf("\nTotal corrections: %d\n", s.Corrections)

	fmt.Println("\nNULL counts in key columns:")
	for _, c := range s.Nulls {
		fmt.Printf("  %-24s %d\n", c.Name, c.N)
	}

	fmt.Println("\nForeign key violations:")
	clean := true
	for _, c := range s.FKViolations {
		if c.N != 0 {
			color.Red("  %-24s %d", c.Name, c.N)
			clean = false
		}
	}
	if clean {
		fmt.Println("  none detected")
	}

	if s.BadCardinality != 0 {
		color.Red("\nOrders outside 1..6 line items: %d", s.BadCardinality)
	}

	fmt.Println()
	if s.Clean() {
		color.Green("✅ Store is internally consistent")
	} else {
		color.Red("❌ Residual integrity violations detected")
	}
}
