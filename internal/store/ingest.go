package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
	"github.com/Lumos-Labs-HQ/martgen/internal/report"
)

// Ingest runs the full load: schema replacement, inserts, and total
// reconciliation, all inside one transaction, followed by the
// integrity audit. External readers never see orders without their
// line items or uncorrected totals.
//
// In dry-run mode the audit runs against the open transaction and
// everything is rolled back; the reconciler and auditor logic is
// identical in both modes.
func (s *Store) Ingest(ctx context.Context, ds *model.Dataset, dryRun bool) (*report.Summary, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := createSchema(ctx, tx); err != nil {
		return nil, err
	}
	if err := s.loadDataset(ctx, tx, ds); err != nil {
		return nil, err
	}

	corrections, err := Reconcile(ctx, tx)
	if err != nil {
		return nil, err
	}
	if corrections > 0 {
		zap.L().Warn("corrected stated totals from line items",
			zap.Int("corrections", corrections))
	}

	if dryRun {
		sum, err := Audit(ctx, tx)
		if err != nil {
			return nil, err
		}
		sum.Mode = "dry-run"
		sum.Corrections = corrections
		if err := tx.Rollback(); err != nil {
			return nil, fmt.Errorf("failed to roll back dry run: %w", err)
		}
		return sum, nil
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit load: %w", err)
	}

	sum, err := Audit(ctx, s.db)
	if err != nil {
		return nil, err
	}
	sum.Mode = "write"
	sum.Corrections = corrections
	return sum, nil
}
