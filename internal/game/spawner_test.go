package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/birdjam/internal/config"
)

func newTestSpawner(kind SpawnKind, progressive bool, seed int64) *Spawner {
	cfg := config.DefaultConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty, cfg.Pipes.Gap, progressive)
	return NewSpawner(kind, cfg, diff, seed)
}

func TestSpawnerFiresOncePerInterval(t *testing.T) {
	s := newTestSpawner(SpawnPipes, false, 1)

	fired := 0
	for tick := 0; tick <= 1000; tick++ {
		_, ok := s.MaybeSpawn(tick, 0)
		want := tick > 0 && tick%100 == 0
		if ok != want {
			t.Fatalf("MaybeSpawn(%d) fired=%v, expected %v", tick, ok, want)
		}
		if ok {
			fired++
		}
	}
	if fired != 10 {
		t.Errorf("fired %d times in 1000 ticks, expected 10", fired)
	}
}

func TestFirstPipeScenario(t *testing.T) {
	// Interval 100, gap 180, height 600: the first pipe appears at tick 100
	// with topHeight in [100, 320] and bottomHeight = 600 - (topHeight + 180).
	for seed := int64(0); seed < 200; seed++ {
		s := newTestSpawner(SpawnPipes, false, seed)
		for tick := 1; tick < 100; tick++ {
			if _, ok := s.MaybeSpawn(tick, 0); ok {
				t.Fatalf("seed %d: spawned early at tick %d", seed, tick)
			}
		}
		sp, ok := s.MaybeSpawn(100, 0)
		if !ok {
			t.Fatalf("seed %d: no spawn at tick 100", seed)
		}
		o := sp.Obstacle
		if o.GapSize != 180 {
			t.Errorf("seed %d: GapSize = %v, expected 180", seed, o.GapSize)
		}
		if o.TopHeight() < 100 || o.TopHeight() > 320 {
			t.Errorf("seed %d: TopHeight = %v, expected in [100, 320]", seed, o.TopHeight())
		}
		if o.BottomHeight() != 600-(o.TopHeight()+180) {
			t.Errorf("seed %d: BottomHeight = %v, expected %v", seed, o.BottomHeight(), 600-(o.TopHeight()+180))
		}
		if o.Pos != 400 || o.Heading != HeadingLeft {
			t.Errorf("seed %d: pipe at %v heading %s, expected 400 heading left", seed, o.Pos, o.Heading)
		}
	}
}

func TestSpawnerProgressiveGap(t *testing.T) {
	s := newTestSpawner(SpawnPipes, true, 3)

	sp, _ := s.MaybeSpawn(100, 15)
	if sp.Obstacle.GapSize != 160 || sp.Obstacle.Stage != 1 {
		t.Errorf("score 15: gap=%v stage=%d, expected 160 and stage 1", sp.Obstacle.GapSize, sp.Obstacle.Stage)
	}
	sp, _ = s.MaybeSpawn(200, 500)
	if sp.Obstacle.GapSize != 80 || sp.Obstacle.Stage != 5 {
		t.Errorf("score 500: gap=%v stage=%d, expected 80 and stage 5", sp.Obstacle.GapSize, sp.Obstacle.Stage)
	}
}

func TestSpawnerWavyDrift(t *testing.T) {
	s := newTestSpawner(SpawnWavyPipes, false, 9)
	for tick := 100; tick <= 2000; tick += 100 {
		sp, ok := s.MaybeSpawn(tick, 0)
		if !ok {
			t.Fatalf("no spawn at tick %d", tick)
		}
		if d := sp.Obstacle.Drift; d < -1 || d > 1 {
			t.Errorf("Drift = %v, expected in [-1, 1]", d)
		}
	}
}

func TestSpawnerBars(t *testing.T) {
	s := newTestSpawner(SpawnBars, false, 5)
	for tick := 100; tick <= 2000; tick += 100 {
		sp, _ := s.MaybeSpawn(tick, 0)
		o := sp.Obstacle
		if o.Shape != ShapeBar || o.Heading != HeadingUp || o.Pos != 600 {
			t.Fatalf("bar = %+v, expected a bar rising from y=600", o)
		}
		if o.GapStart < 50 || o.GapStart > 400-180-50 {
			t.Errorf("bar x = %v, expected in [50, 170]", o.GapStart)
		}
	}
}

func TestSpawnerNone(t *testing.T) {
	s := newTestSpawner(SpawnNone, false, 1)
	for tick := 0; tick <= 1000; tick++ {
		if _, ok := s.MaybeSpawn(tick, 0); ok {
			t.Fatalf("SpawnNone fired at tick %d", tick)
		}
	}
}

func TestSpawnerChaosEdges(t *testing.T) {
	tests := []struct {
		edge    Edge
		heading Heading
		pos     float64
		span    float64
	}{
		{EdgeRight, HeadingLeft, 400, 600},
		{EdgeLeft, HeadingRight, -50, 600},
		{EdgeBottom, HeadingUp, 600, 400},
		{EdgeTop, HeadingDown, -50, 400},
	}

	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			s := newTestSpawner(SpawnChaos, false, 1)
			s.edge = tt.edge
			sp, ok := s.MaybeSpawn(100, 0)
			if !ok {
				t.Fatal("no spawn at tick 100")
			}
			o := sp.Obstacle
			if o.Heading != tt.heading || o.Pos != tt.pos || o.Span != tt.span {
				t.Errorf("obstacle heading=%s pos=%v span=%v, expected %s %v %v",
					o.Heading, o.Pos, o.Span, tt.heading, tt.pos, tt.span)
			}
			if o.TopHeight() < 100 || o.TopHeight() > tt.span-100-180 {
				t.Errorf("gap start %v outside [100, %v]", o.TopHeight(), tt.span-280)
			}
		})
	}
}

func TestSpawnerChaosTurnsOnItsInterval(t *testing.T) {
	s := newTestSpawner(SpawnChaos, false, 11)
	for tick := 1; tick < 300; tick++ {
		s.MaybeSpawn(tick, 0)
		if s.Edge() != EdgeRight {
			t.Fatalf("edge changed to %s at tick %d, before the first turn", s.Edge(), tick)
		}
	}

	ref := rand.New(rand.NewSource(11))
	// Ticks 100 and 200 each drew one gap start.
	ref.Float64()
	ref.Float64()
	want := Edge(ref.Intn(int(edgeCount)))

	s.MaybeSpawn(300, 0)
	if s.Edge() != want {
		t.Errorf("edge at tick 300 = %s, expected %s", s.Edge(), want)
	}
}

func TestPlaceCoinGivesUpAfterBoundedAttempts(t *testing.T) {
	const seed = 7
	s := newTestSpawner(SpawnPipesAndCoins, false, seed)

	// The gap lies entirely above the coin range [50, 550].
	blocked := Obstacle{Shape: ShapeGapWall, Heading: HeadingLeft, GapStart: 0, GapSize: 10, Span: 600}

	_, attempts, ok := s.placeCoin(blocked)
	if ok {
		t.Fatal("placeCoin should fail when no safe position exists")
	}
	if attempts != 10 {
		t.Errorf("attempts = %d, expected 10", attempts)
	}

	// Exactly ten draws were consumed, no more.
	ref := rand.New(rand.NewSource(seed))
	for i := 0; i < 10; i++ {
		ref.Float64()
	}
	if got, want := s.rng.Float64(), ref.Float64(); got != want {
		t.Errorf("spawner RNG advanced by more than 10 draws")
	}
}

func TestPlaceCoinInsideGap(t *testing.T) {
	s := newTestSpawner(SpawnPipesAndCoins, false, 7)
	open := Obstacle{Shape: ShapeGapWall, Heading: HeadingLeft, GapStart: 0, GapSize: 600, Span: 600}

	y, attempts, ok := s.placeCoin(open)
	if !ok || attempts != 1 {
		t.Fatalf("placeCoin = (%v, %d, %v), expected success on the first attempt", y, attempts, ok)
	}
	if y < 50 || y > 550 {
		t.Errorf("coin y = %v, expected in [50, 550]", y)
	}
}

func TestSpawnerCoinsOnlyInGap(t *testing.T) {
	s := newTestSpawner(SpawnPipesAndCoins, false, 21)

	coins := 0
	for tick := 100; tick <= 20000; tick += 100 {
		sp, ok := s.MaybeSpawn(tick, 0)
		if !ok {
			t.Fatalf("no spawn at tick %d", tick)
		}
		if !sp.HasPickup {
			continue
		}
		coins++
		y := sp.Pickup.Body.Pos.Y
		o := sp.Obstacle
		if y < o.TopHeight() || y > o.Span-o.BottomHeight() {
			t.Errorf("coin at y=%v outside gap [%v, %v]", y, o.TopHeight(), o.Span-o.BottomHeight())
		}
		if sp.Pickup.Value != 3 || sp.Pickup.Kind != PickupCoin {
			t.Errorf("pickup = %+v, expected a coin worth 3", sp.Pickup)
		}
	}
	if coins == 0 {
		t.Error("expected at least one coin in 200 spawns")
	}
}
