package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/martgen/internal/config"
	"github.com/Lumos-Labs-HQ/martgen/internal/query"
	"github.com/Lumos-Labs-HQ/martgen/internal/store"
)

var queryCmd = &cobra.Command{
	Use:   "query [file]",
	Short: "Run analytic SQL from a file against the committed store",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		path := "queries.sql"
		if len(args) == 1 {
			path = args[0]
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

		return query.RunFile(cmd.Context(), s.DB(), path, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
