package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Lumos-Labs-HQ/martgen/internal/config"
)

var initForce bool

const configFileName = "martgen.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a martgen.yaml with the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFileName); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}

		out, err := yaml.Marshal(config.Default())
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		header := "# martgen configuration. Every option is generative: changing one\n# changes volume or content, never the consistency guarantees.\n"
		if err := os.WriteFile(configFileName, append([]byte(header), out...), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configFileName, err)
		}

		color.Green("✅ Created %s", configFileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
