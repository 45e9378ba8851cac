package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lumos-Labs-HQ/martgen/internal/config"
	"github.com/Lumos-Labs-HQ/martgen/internal/interchange"
	"github.com/Lumos-Labs-HQ/martgen/internal/logger"
	"github.com/Lumos-Labs-HQ/martgen/internal/report"
	"github.com/Lumos-Labs-HQ/martgen/internal/store"
)

var ingestDryRun bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the interchange files into the store, reconcile, and audit",
	Long: `Ingest reads the CSV dataset back, replaces the store schema, inserts
every row, and reconciles order totals against their line items -- all
inside one transaction. It exits non-zero if a row is malformed, a
constraint fails, or the post-commit audit finds residual violations.

With --dry-run the identical pipeline runs against a scratch store and
nothing is committed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ds, err := interchange.ReadDataset(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to read interchange data: %w", err)
		}

		dsn, err := cfg.DSN()
		if err != nil {
			return err
		}
		if cfg.SqliteBacked() {
			if ingestDryRun {
				dsn = ":memory:"
			} else {
				// full reload: a prior store is replaced, never appended to
				if dir := filepath.Dir(cfg.Database.Path); dir != "." {
					if err := os.MkdirAll(dir, 0755); err != nil {
						return fmt.Errorf("failed to create database directory: %w", err)
					}
				}
				if err := os.Remove(cfg.Database.Path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to remove existing database: %w", err)
				}
			}
		}

		s, err := store.Open(cfg.Database.Provider, dsn)
		if err != nil {
			return err
		}
		defer s.Close()

		start := time.Now()
		sum, err := s.Ingest(cmd.Context(), ds, ingestDryRun)
		if err != nil {
			return err
		}
		logger.L().Info("ingestion finished",
			zap.String("mode", sum.Mode),
			zap.Int("corrections", sum.Corrections),
			zap.Duration("took", time.Since(start)))

		report.Print(sum)
		if !sum.Clean() {
			return errors.New("residual integrity violations detected")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "Validate and report without committing")
}
