package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdjam/internal/config"
)

var flagEmbedded bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search path
and the --difficulty preset are applied. Save the output to
~/.birdjam/configs/birdjam.yaml to customize it.

Examples:
  birdjam config
  birdjam config --difficulty hard
  birdjam config --embedded > ~/.birdjam/configs/birdjam.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEmbedded, "embedded", false, "Print the built-in default file unchanged")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagEmbedded {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
