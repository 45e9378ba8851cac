package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lumos-Labs-HQ/martgen/internal/logger"
)

var (
	cfgFile string
	verbose bool
	Version = "0.4.2"
)

var rootCmd = &cobra.Command{
	Use:   "martgen",
	Short: "Deterministic e-commerce dataset synthesizer and reconciling ingester",
	Long: `
Martgen produces a small, internally consistent relational dataset
(customers, products, orders, order items, reviews) from a single seed,
then loads it into an embedded relational store inside one transaction,
repairing any total that drifted from its line items on the way in.

Typical flow:
  martgen init        scaffold martgen.yaml
  martgen generate    write one CSV per entity
  martgen ingest      load, reconcile, and audit the store
  martgen query       run analytic SQL against the committed store`,

	// runtime failures (malformed rows, residual violations) are not
	// usage errors; keep the help text out of their output
	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("martgen version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./martgen.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("martgen")
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()

	// the config file is optional; defaults cover everything
	_ = viper.ReadInConfig()

	if err := logger.Init(verbose); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
	}
}
