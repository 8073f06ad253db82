// Package config provides YAML-based game configuration loading and
// difficulty management for birdjam.
package config

// Config contains all tunable parameters of the game world and its modes.
// Distances are in world units (the playfield is Width x Height), speeds in
// world units per tick, intervals in ticks.
type Config struct {
	World      WorldConfig           `yaml:"world"`
	Bird       BirdConfig            `yaml:"bird"`
	Pipes      PipesConfig           `yaml:"pipes"`
	Coins      CoinsConfig           `yaml:"coins"`
	Falling    FallingConfig         `yaml:"falling"`
	Chaos      ChaosConfig           `yaml:"chaos"`
	Frog       FrogConfig            `yaml:"frog"`
	Difficulty DifficultyConfig      `yaml:"difficulty"`
	Modes      map[string]ModeConfig `yaml:"modes"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between obstacle spawns
}

// BirdConfig defines the player bird.
type BirdConfig struct {
	Size         float64 `yaml:"size"`
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative is up
	Steer        float64 `yaml:"steer"`         // Horizontal step per tick while an arrow is held
}

// PipesConfig defines gap walls.
type PipesConfig struct {
	Width     float64 `yaml:"width"` // Thickness along the travel axis
	Speed     float64 `yaml:"speed"`
	Gap       float64 `yaml:"gap"`        // Base gap for modes without progression
	GapMargin float64 `yaml:"gap_margin"` // Minimum distance between gap and wall ends
	DriftMax  float64 `yaml:"drift_max"`  // Wavy pipes drift in [-DriftMax, DriftMax] per tick
	BandTop   float64 `yaml:"band_top"`   // Wavy gap start reverses above this
	BandBase  float64 `yaml:"band_base"`  // ... and below Height - BandBase
}

// CoinsConfig defines gold mode pickups.
type CoinsConfig struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	Chance   float64 `yaml:"chance"` // Probability of a coin per pipe
	Value    int     `yaml:"value"`
	Margin   float64 `yaml:"margin"`   // Coins are placed in [Margin, Height-Margin]
	Attempts int     `yaml:"attempts"` // Placement retries before giving up
}

// FallingConfig defines falling mode, where bars rise past a fixed bird.
type FallingConfig struct {
	BirdY  float64 `yaml:"bird_y"` // Fraction of the height
	Margin float64 `yaml:"margin"` // Bars spawn in [Margin, Width-bar-Margin]
}

// ChaosConfig defines chaos mode.
type ChaosConfig struct {
	DirectionInterval int `yaml:"direction_interval"` // Ticks between edge changes
}

// FrogConfig defines the fly-catching mode.
type FrogConfig struct {
	BodyY         float64 `yaml:"body_y"`
	BodySize      float64 `yaml:"body_size"`
	Steer         float64 `yaml:"steer"`
	TongueSize    float64 `yaml:"tongue_size"`
	TongueSpeed   float64 `yaml:"tongue_speed"`
	FlySize       float64 `yaml:"fly_size"`
	FlySpeed      float64 `yaml:"fly_speed"`
	FlyMinY       float64 `yaml:"fly_min_y"`
	FlyMaxY       float64 `yaml:"fly_max_y"`
	FlyAmplitude  float64 `yaml:"fly_amplitude"`
	FlyAngleSpeed float64 `yaml:"fly_angle_speed"`
	FlyValue      int     `yaml:"fly_value"`
}

// ModeConfig holds per-mode overrides.
type ModeConfig struct {
	WinScore int `yaml:"win_score"` // 0 means the mode has no win condition
}

// DifficultyConfig defines gap progression.
type DifficultyConfig struct {
	Enabled   bool       `yaml:"enabled"`    // false freezes progress mode at its first stage
	GapOffset float64    `yaml:"gap_offset"` // Added to every gap (presets)
	MinGap    float64    `yaml:"min_gap"`    // Gaps never shrink below this
	Stages    StageTable `yaml:"stages"`
}

// DifficultyStage maps a score range to a gap size.
// MaxScore == 0 means the stage is open-ended.
type DifficultyStage struct {
	MinScore int     `yaml:"min_score"`
	MaxScore int     `yaml:"max_score"`
	GapSize  float64 `yaml:"gap_size"`
}

// Contains reports whether score falls in [MinScore, MaxScore).
func (s DifficultyStage) Contains(score int) bool {
	return score >= s.MinScore && (s.MaxScore == 0 || score < s.MaxScore)
}

// StageTable is an ordered list of difficulty stages.
type StageTable []DifficultyStage

// Lookup returns the first stage containing score. Scores outside every
// stage fall back to the last stage. An empty table yields the zero stage.
func (t StageTable) Lookup(score int) DifficultyStage {
	if len(t) == 0 {
		return DifficultyStage{}
	}
	return t[t.Index(score)]
}

// Index returns the position of the stage Lookup would return, or -1 for
// an empty table.
func (t StageTable) Index(score int) int {
	for i, s := range t {
		if s.Contains(score) {
			return i
		}
	}
	return len(t) - 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetGapOffset is the gap adjustment each preset applies.
const presetGapOffset = 20

// GapOffsetForPreset returns the gap_offset for a difficulty preset.
func GapOffsetForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return presetGapOffset
	case DifficultyHard:
		return -presetGapOffset
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
