package config

import (
	_ "embed"
)

//go:embed defaults/birdjam.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration. It mirrors the
// embedded defaults/birdjam.yaml and is the last resort of Load.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:         400,
			Height:        600,
			SpawnInterval: 100,
		},
		Bird: BirdConfig{
			Size:         30,
			Gravity:      0.6,
			JumpStrength: -10,
			Steer:        3,
		},
		Pipes: PipesConfig{
			Width:     50,
			Speed:     3,
			Gap:       180,
			GapMargin: 100,
			DriftMax:  1,
			BandTop:   50,
			BandBase:  230,
		},
		Coins: CoinsConfig{
			Size:     15,
			Speed:    3,
			Chance:   0.3,
			Value:    3,
			Margin:   50,
			Attempts: 10,
		},
		Falling: FallingConfig{
			BirdY:  1.0 / 3,
			Margin: 50,
		},
		Chaos: ChaosConfig{
			DirectionInterval: 300,
		},
		Frog: FrogConfig{
			BodyY:         540,
			BodySize:      80,
			Steer:         6,
			TongueSize:    20,
			TongueSpeed:   20,
			FlySize:       10,
			FlySpeed:      3,
			FlyMinY:       50,
			FlyMaxY:       300,
			FlyAmplitude:  20,
			FlyAngleSpeed: 0.1,
			FlyValue:      1,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			GapOffset: 0,
			MinGap:    60,
			Stages: StageTable{
				{MinScore: 0, MaxScore: 10, GapSize: 180},
				{MinScore: 10, MaxScore: 20, GapSize: 160},
				{MinScore: 20, MaxScore: 30, GapSize: 140},
				{MinScore: 30, MaxScore: 40, GapSize: 120},
				{MinScore: 40, MaxScore: 50, GapSize: 100},
				{MinScore: 50, MaxScore: 0, GapSize: 80},
			},
		},
		Modes: map[string]ModeConfig{
			"flappy":   {WinScore: 0},
			"gravity":  {WinScore: 0},
			"wavy":     {WinScore: 0},
			"progress": {WinScore: 0},
			"falling":  {WinScore: 0},
			"gold":     {WinScore: 0},
			"chaos":    {WinScore: 0},
			"frog":     {WinScore: 5},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
