package config

import (
	"math"

	"github.com/vovakirdan/birdjam/internal/core"
)

// DifficultyManager resolves the difficulty stage for a score.
//
// Progressive managers walk the configured stage table. Flat managers
// always return a single open-ended stage at the base gap, so every mode
// goes through the same lookup.
type DifficultyManager struct {
	cfg      DifficultyConfig
	flat     StageTable
	progress bool
}

// NewDifficultyManager creates a difficulty manager. baseGap is the gap used
// when progression is off; progressive selects the stage table.
func NewDifficultyManager(cfg DifficultyConfig, baseGap float64, progressive bool) *DifficultyManager {
	return &DifficultyManager{
		cfg:      cfg,
		flat:     StageTable{{MinScore: 0, MaxScore: 0, GapSize: baseGap}},
		progress: progressive,
	}
}

// Table returns the stage table in effect.
func (d *DifficultyManager) Table() StageTable {
	if d.progress && len(d.cfg.Stages) > 0 {
		return d.cfg.Stages
	}
	return d.flat
}

// Stage returns the stage for the given score, with the gap offset and
// minimum gap applied. A disabled progressive manager stays on its first
// stage.
func (d *DifficultyManager) Stage(score int) DifficultyStage {
	table := d.Table()
	st := table.Lookup(score)
	if d.frozen() {
		st = table[0]
	}
	st.GapSize = d.adjust(st.GapSize)
	return st
}

// StageIndex returns the position in Table() of the stage for score.
func (d *DifficultyManager) StageIndex(score int) int {
	if d.frozen() {
		return 0
	}
	return d.Table().Index(score)
}

// frozen reports a progressive manager whose progression is switched off.
func (d *DifficultyManager) frozen() bool {
	return d.progress && !d.cfg.Enabled
}

// GapSize returns the gap for the given score.
func (d *DifficultyManager) GapSize(score int) float64 {
	return d.Stage(score).GapSize
}

// Level returns how far the score has progressed through the stage table,
// from 0.0 (widest gap) to 1.0 (narrowest gap).
func (d *DifficultyManager) Level(score int) float64 {
	table := d.Table()
	if len(table) < 2 {
		return 0
	}
	widest, narrowest := math.Inf(-1), math.Inf(1)
	for _, s := range table {
		widest = math.Max(widest, s.GapSize)
		narrowest = math.Min(narrowest, s.GapSize)
	}
	if widest == narrowest {
		return 0
	}
	gap := d.GapSize(score) - d.cfg.GapOffset
	return core.ClampF(core.MapRange(gap, widest, narrowest, 0, 1), 0, 1)
}

func (d *DifficultyManager) adjust(gap float64) float64 {
	return math.Max(gap+d.cfg.GapOffset, d.cfg.MinGap)
}
