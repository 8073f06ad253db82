package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "birdjam.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.birdjam/configs/birdjam.yaml ->
// ./configs/birdjam.yaml -> embedded default -> DefaultConfig().
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the
// implicit locations are skipped when unusable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".birdjam", "configs", filename)
}

// ParsePreset converts a preset name into a DifficultyPreset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.GapOffset = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.GapOffset = GapOffsetForPreset(preset)
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func Validate(cfg Config) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w, h := cfg.World.Width, cfg.World.Height
	check(w > 0 && h > 0, "world: size must be positive, got %vx%v", w, h)
	check(cfg.World.SpawnInterval > 0, "world: spawn_interval must be positive, got %d", cfg.World.SpawnInterval)

	check(cfg.Bird.Size > 0, "bird: size must be positive")
	check(cfg.Pipes.Width > 0, "pipes: width must be positive")
	check(cfg.Pipes.Speed > 0, "pipes: speed must be positive")
	check(cfg.Pipes.Gap > 0, "pipes: gap must be positive")
	check(cfg.Pipes.GapMargin >= 0, "pipes: gap_margin must not be negative")
	check(cfg.Pipes.BandTop < h-cfg.Pipes.BandBase, "pipes: drift band [%v, %v] is empty", cfg.Pipes.BandTop, h-cfg.Pipes.BandBase)

	check(cfg.Coins.Chance >= 0 && cfg.Coins.Chance <= 1, "coins: chance must be in [0, 1], got %v", cfg.Coins.Chance)
	check(cfg.Coins.Attempts > 0, "coins: attempts must be positive")
	check(cfg.Coins.Margin*2 < h, "coins: margin %v leaves no room", cfg.Coins.Margin)

	check(cfg.Falling.BirdY > 0 && cfg.Falling.BirdY < 1, "falling: bird_y must be a fraction in (0, 1)")
	check(cfg.Chaos.DirectionInterval > 0, "chaos: direction_interval must be positive")

	check(cfg.Frog.BodyY > 0 && cfg.Frog.BodyY < h, "frog: body_y must be inside the world")
	check(cfg.Frog.TongueSpeed > 0, "frog: tongue_speed must be positive")
	check(cfg.Frog.FlyMinY <= cfg.Frog.FlyMaxY, "frog: fly_min_y must not exceed fly_max_y")

	stages := cfg.Difficulty.Stages
	check(len(stages) > 0, "difficulty: at least one stage is required")
	for i, s := range stages {
		check(s.GapSize > 0, "difficulty: stage %d: gap_size must be positive", i)
		check(s.MaxScore == 0 || s.MaxScore > s.MinScore, "difficulty: stage %d: max_score must exceed min_score", i)
		if i > 0 {
			check(s.MinScore >= stages[i-1].MinScore, "difficulty: stage %d: stages must be ordered by min_score", i)
		}
	}

	// Gap walls cross the height, and the width in chaos mode; falling bars
	// cross the width. The widest gap must leave its margins on both sides.
	widest := cfg.Pipes.Gap
	for _, s := range stages {
		widest = math.Max(widest, s.GapSize)
	}
	widest = math.Max(widest+cfg.Difficulty.GapOffset, cfg.Difficulty.MinGap)
	span := math.Min(w, h)
	check(widest+2*cfg.Pipes.GapMargin <= span,
		"pipes: widest gap %v with gap_margin %v on both sides does not fit in %v", widest, cfg.Pipes.GapMargin, span)
	check(widest+2*cfg.Falling.Margin <= w,
		"falling: widest bar %v with margin %v on both sides does not fit in width %v", widest, cfg.Falling.Margin, w)

	for name, m := range cfg.Modes {
		check(m.WinScore >= 0, "modes: %s: win_score must not be negative", name)
	}

	return errors.Join(errs...)
}
