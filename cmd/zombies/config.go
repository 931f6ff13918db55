package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/zombie-arcade/internal/config"
)

var (
	flagDumpConfig     string
	flagDumpDifficulty string
	flagDumpDefaults   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the config a run would use, after the search order
(--config, ~/.arcade/configs/zombies.yaml, ./configs/zombies.yaml,
built-in defaults) and the difficulty preset are applied.

Examples:
  zombies config --defaults > ~/.arcade/configs/zombies.yaml
  zombies config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDumpConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDumpDifficulty, "difficulty", "", "Difficulty preset to apply")
	configCmd.Flags().BoolVar(&flagDumpDefaults, "defaults", false, "Print the commented built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDumpDefaults {
		_, err := out.Write(config.GetDefaultYAML(gameID))
		return err
	}

	preset, err := config.ParsePreset(flagDumpDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadZombies(flagDumpConfig)
	if err != nil {
		return err
	}
	config.ApplyZombiesPreset(&cfg, preset)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
