package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.arcade/configs/brickbreaker.yaml (or pass it with --config) and edit
the keys you want to change; missing keys keep their defaults.

Example:
  brickbreaker config > ~/.arcade/configs/brickbreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}


// warnConfig logs why the game will fall back to defaults for the config
// at path or the difficulty preset. It reports whether both are usable.
func warnConfig(logger *log.Logger, path, preset string) bool {
	ok := true
	if path != "" {
		if _, err := config.Load(path); err != nil {
			logger.Warn("using default config", "err", err)
			ok = false
		}
	}
	if preset != "" && config.ParsePreset(preset) == "" {
		logger.Warn("unknown difficulty preset, ignoring", "preset", preset)
		ok = false
	}
	return ok
}
