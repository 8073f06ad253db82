package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdjam/internal/config"
	"github.com/vovakirdan/birdjam/internal/game"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all modes",
	Long:  `Shows every mode with its menu key, name and win condition.`,
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

func runModes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	maxName := len("Name")
	for _, m := range game.Modes() {
		maxName = max(maxName, len(m.Name()))
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-3s  %-*s  %-14s  %s\n", "Key", maxName, "Name", "Title", "Goal")
	fmt.Fprintf(out, "  %-3s  %-*s  %-14s  %s\n", "---", maxName, "----", "-----", "----")
	for _, m := range game.Modes() {
		fmt.Fprintf(out, "  %-3s  %-*s  %-14s  %s\n", m.Key(), maxName, m.Name(), m.Spec().Label, goal(cfg, m))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'birdjam play <name>' to play a mode.")
	return nil
}

func goal(cfg config.Config, m game.Mode) string {
	if win := cfg.Modes[m.Name()].WinScore; win > 0 {
		return fmt.Sprintf("score %d", win)
	}
	return "endless"
}
