package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the search order:
--config path, ~/.twenty48/configs/2048.yaml, ./configs/2048.yaml and the
built-in defaults. Command-line flags are applied on top.

Use --default to print the built-in defaults, a good starting point for a
custom file.

Examples:
  twenty48 config
  twenty48 config --default > ~/.twenty48/configs/2048.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefault {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
