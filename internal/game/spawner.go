package game

import (
	"math/rand"

	"github.com/vovakirdan/birdjam/internal/config"
	"github.com/vovakirdan/birdjam/internal/core"
)

// SpawnKind selects what a mode's spawner produces.
type SpawnKind int

const (
	SpawnNone          SpawnKind = iota // Nothing periodic
	SpawnPipes                          // Gap walls from the right edge
	SpawnWavyPipes                      // Pipes whose gap drifts vertically
	SpawnBars                           // Bars rising from the bottom edge
	SpawnPipesAndCoins                  // Pipes, sometimes with a coin in the gap
	SpawnChaos                          // Gap walls from a periodically changing edge
)

// Edge is the side of the playfield obstacles enter from in chaos mode.
type Edge int

const (
	EdgeRight Edge = iota
	EdgeBottom
	EdgeTop
	EdgeLeft
	edgeCount
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Spawn is what one spawner firing produces: exactly one obstacle and at
// most one pickup.
type Spawn struct {
	Obstacle  Obstacle
	Pickup    Pickup
	HasPickup bool
	// CoinAttempts is how many placements were tried for the pickup.
	CoinAttempts int
}

// Spawner produces obstacles on a fixed tick interval.
type Spawner struct {
	kind   SpawnKind
	cfg    config.Config
	diff   *config.DifficultyManager
	rng    *rand.Rand
	edge   Edge
	nextID int
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(kind SpawnKind, cfg config.Config, diff *config.DifficultyManager, seed int64) *Spawner {
	s := &Spawner{
		kind: kind,
		cfg:  cfg,
		diff: diff,
	}
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG and restores the initial edge.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.edge = EdgeRight
	s.nextID = 0
}

// Edge returns the current chaos entry edge.
func (s *Spawner) Edge() Edge {
	return s.edge
}

// Uniform draws a float uniformly from [lo, hi). An empty range yields lo.
func (s *Spawner) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// MaybeSpawn fires iff tick > 0 and tick is a multiple of the spawn
// interval. It is called once per play tick; chaos mode also changes its
// entry edge here on its own interval, before spawning.
func (s *Spawner) MaybeSpawn(tick, score int) (Spawn, bool) {
	if s.kind == SpawnChaos && tick > 0 && tick%s.cfg.Chaos.DirectionInterval == 0 {
		s.edge = Edge(s.rng.Intn(int(edgeCount)))
	}

	if s.kind == SpawnNone || tick <= 0 || tick%s.cfg.World.SpawnInterval != 0 {
		return Spawn{}, false
	}

	gap := s.diff.GapSize(score)
	stage := s.diff.StageIndex(score)

	var sp Spawn
	switch s.kind {
	case SpawnPipes:
		sp.Obstacle = s.wall(HeadingLeft, gap)
	case SpawnWavyPipes:
		sp.Obstacle = s.wall(HeadingLeft, gap)
		sp.Obstacle.Drift = s.Uniform(-s.cfg.Pipes.DriftMax, s.cfg.Pipes.DriftMax)
	case SpawnBars:
		sp.Obstacle = s.bar(gap)
	case SpawnPipesAndCoins:
		sp.Obstacle = s.wall(HeadingLeft, gap)
		if s.rng.Float64() < s.cfg.Coins.Chance {
			y, attempts, ok := s.placeCoin(sp.Obstacle)
			sp.CoinAttempts = attempts
			if ok {
				sp.Pickup = s.coin(sp.Obstacle, y)
				sp.HasPickup = true
			}
		}
	case SpawnChaos:
		sp.Obstacle = s.wall(s.edgeHeading(), gap)
	default:
		return Spawn{}, false
	}
	sp.Obstacle.Stage = stage
	return sp, true
}

func (s *Spawner) id() int {
	s.nextID++
	return s.nextID
}

// edgeHeading maps the entry edge to the direction of travel.
func (s *Spawner) edgeHeading() Heading {
	switch s.edge {
	case EdgeBottom:
		return HeadingUp
	case EdgeTop:
		return HeadingDown
	case EdgeLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// wall builds a gap wall entering the playfield from the side opposite its
// heading. The gap start is uniform in [margin, span - margin - gap].
func (s *Spawner) wall(h Heading, gap float64) Obstacle {
	w, ht := s.cfg.World.Width, s.cfg.World.Height
	thick := s.cfg.Pipes.Width
	margin := s.cfg.Pipes.GapMargin

	o := Obstacle{
		ID:        s.id(),
		Shape:     ShapeGapWall,
		Heading:   h,
		Thickness: thick,
		GapSize:   gap,
	}
	switch h {
	case HeadingLeft:
		o.Pos, o.Span = w, ht
	case HeadingRight:
		o.Pos, o.Span = -thick, ht
	case HeadingUp:
		o.Pos, o.Span = ht, w
	case HeadingDown:
		o.Pos, o.Span = -thick, w
	}
	o.GapStart = s.Uniform(margin, o.Span-margin-gap)
	return o
}

// bar builds a falling-mode bar rising from the bottom edge.
func (s *Spawner) bar(length float64) Obstacle {
	w, h := s.cfg.World.Width, s.cfg.World.Height
	margin := s.cfg.Falling.Margin
	return Obstacle{
		ID:        s.id(),
		Shape:     ShapeBar,
		Heading:   HeadingUp,
		Pos:       h,
		Thickness: s.cfg.Pipes.Width,
		GapStart:  s.Uniform(margin, w-length-margin),
		GapSize:   length,
		Span:      w,
	}
}

// placeCoin tries a bounded number of random heights and keeps the first
// one inside the wall's gap. It gives up after Coins.Attempts tries and
// reports how many it made.
func (s *Spawner) placeCoin(o Obstacle) (float64, int, bool) {
	lo := s.cfg.Coins.Margin
	hi := s.cfg.World.Height - s.cfg.Coins.Margin
	for i := 1; i <= s.cfg.Coins.Attempts; i++ {
		y := s.Uniform(lo, hi)
		if y >= o.TopHeight() && y <= o.Span-o.BottomHeight() {
			return y, i, true
		}
	}
	return 0, s.cfg.Coins.Attempts, false
}

func (s *Spawner) coin(o Obstacle, y float64) Pickup {
	return Pickup{
		ID:   s.id(),
		Kind: PickupCoin,
		Body: Entity{
			Pos:    core.Vec{X: o.Pos + o.Thickness/2, Y: y},
			Size:   s.cfg.Coins.Size,
			Vel:    core.Vec{X: -s.cfg.Coins.Speed},
			Motion: MotionConstant,
		},
		Value: s.cfg.Coins.Value,
	}
}
