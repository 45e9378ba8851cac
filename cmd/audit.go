package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/martgen/internal/config"
	"github.com/Lumos-Labs-HQ/martgen/internal/report"
	"github.com/Lumos-Labs-HQ/martgen/internal/store"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the integrity audit against an existing store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dsn, err := cfg.DSN()
		if err != nil {
			return err
		}
		if cfg.SqliteBacked() {
			if _, err := os.Stat(cfg.Database.Path); err != nil {
				return fmt.Errorf("store not found at %s (run `martgen ingest` first)", cfg.Database.Path)
			}
		}

		s, err := store.Open(cfg.Database.Provider, dsn)
		if err != nil {
			return err
		}
		defer s.Close()

		sum, err := store.Audit(cmd.Context(), s.DB())
		if err != nil {
			return err
		}
		sum.Mode = "audit"

		report.Print(sum)
		if !sum.Clean() {
			return errors.New("residual integrity violations detected")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
