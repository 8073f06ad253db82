// birdjam is a collection of one-button bird games for the terminal.
//
// Usage:
//
//	birdjam play [mode]        - Open the menu, or jump straight to a mode
//	birdjam modes              - List the modes and their menu keys
//	birdjam config             - Print the effective configuration
//	birdjam simulate <mode>    - Let the autopilot play a mode headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom YAML configuration
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Log file (empty disables logging)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdjam/internal/config"
	"github.com/vovakirdan/birdjam/internal/platform"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birdjam",
	Short: "birdjam - one-button bird games in your terminal",
	Long: `birdjam bundles eight small games around a bird that flaps, flips
gravity, dodges and collects coins, plus a frog that catches flies.

Available commands:
  play      - Open the menu or start a mode directly
  modes     - List all modes
  config    - Print the effective configuration as YAML
  simulate  - Run a mode headless with the autopilot

Examples:
  birdjam play
  birdjam play gold --difficulty hard
  birdjam play frog --backend tcell --sound
  birdjam simulate chaos --seed 42 --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogPath(), "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".birdjam", "logs", "birdjam.log")
}

// loadConfig resolves the configuration from --config and applies the
// --difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newLogger() (*log.Logger, func(), error) {
	opts := platform.DefaultLogOptions()
	opts.Path = flagLogFile
	opts.Level = flagLogLevel

	logger, closer, err := platform.NewLogger(opts)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}
