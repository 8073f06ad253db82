package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/birdjam/internal/config"
)

// execute runs the root command with fresh global flags and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	flagSeed, flagConfig, flagDifficulty = 0, "", ""
	flagLogFile, flagLogLevel = "", "info"
	flagTicks, flagRuns = 3600, 1
	flagEmbedded = false
	flagBackend = "tea"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestModesCommand(t *testing.T) {
	out, err := execute(t, "modes")
	if err != nil {
		t.Fatalf("modes error = %v", err)
	}
	for _, want := range []string{"flappy", "Gravity Bird", "chaos", "Frog Game", "score 5", "endless"} {
		if !strings.Contains(out, want) {
			t.Errorf("modes output missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	rows := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "  ") && !strings.Contains(l, "Key") && !strings.Contains(l, "---") {
			rows++
		}
	}
	if rows != 8 {
		t.Errorf("modes listed %d rows, expected 8", rows)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("config output does not parse: %v", err)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable difficulty")
	}
	if want := config.GapOffsetForPreset(config.DifficultyHard); cfg.Difficulty.GapOffset != want {
		t.Errorf("GapOffset = %v, expected %v", cfg.Difficulty.GapOffset, want)
	}
}

func TestConfigCommandEmbedded(t *testing.T) {
	out, err := execute(t, "config", "--embedded")
	if err != nil {
		t.Fatalf("config --embedded error = %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Error("config --embedded should print the built-in file unchanged")
	}
}

func TestConfigCommandBadPreset(t *testing.T) {
	if _, err := execute(t, "config", "--difficulty", "nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	args := []string{"simulate", "gold", "--seed", "7", "--ticks", "800", "--runs", "2"}
	first, err := execute(t, args...)
	if err != nil {
		t.Fatalf("simulate error = %v", err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatalf("simulate error = %v", err)
	}
	if first != second {
		t.Errorf("simulate output differs:\n%s\nvs\n%s", first, second)
	}
	for _, want := range []string{"mode=gold seed=7", "run=1 ", "run=2 ", "best=", "finished="} {
		if !strings.Contains(first, want) {
			t.Errorf("simulate output missing %q:\n%s", want, first)
		}
	}
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"simulate", "room", "--seed", "1"}},
		{"no mode", []string{"simulate"}},
		{"zero ticks", []string{"simulate", "flappy", "--ticks", "0"}},
		{"bad log level", []string{"simulate", "flappy", "--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("%v should fail", tt.args)
			}
		})
	}
}

func TestPlayRejectsBadArgs(t *testing.T) {
	if _, err := execute(t, "play", "room"); err == nil || !strings.Contains(err.Error(), "birdjam modes") {
		t.Errorf("play room error = %v, expected a hint to list modes", err)
	}
	if _, err := execute(t, "play", "--backend", "sdl"); err == nil || !strings.Contains(err.Error(), "backend") {
		t.Errorf("play --backend sdl error = %v, expected backend error", err)
	}
}
