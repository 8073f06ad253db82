package game

import (
	"fmt"

	"github.com/vovakirdan/birdjam/internal/config"
	"github.com/vovakirdan/birdjam/internal/core"
)

// Session owns all mutable game state. It is driven by one Tick per frame
// and is not safe for concurrent use.
type Session struct {
	cfg    config.Config
	bounds Bounds
	seed   int64
	runs   int

	state  State
	paused bool
	tick   int
	score  int

	player    Entity
	tongue    Tongue
	obstacles []Obstacle
	pickups   []Pickup

	diff    *config.DifficultyManager
	spawner *Spawner
	wins    [modeCount]int

	events []Event
}

// New validates the configuration and returns a session on the menu.
// Mode names in cfg.Modes must all be known modes.
func New(cfg config.Config, seed int64) (*Session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("game: invalid config: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		bounds: Bounds{W: cfg.World.Width, H: cfg.World.Height},
		seed:   seed,
		state:  State{Kind: StateMenu, Mode: ModeFlappy},
	}
	for name, mc := range cfg.Modes {
		m, ok := modeByName(name)
		if !ok {
			return nil, fmt.Errorf("game: config names unknown mode %q", name)
		}
		s.wins[m] = mc.WinScore
	}
	s.configure(ModeFlappy)
	s.reset(ModeFlappy)
	return s, nil
}

func modeByName(name string) (Mode, bool) {
	for _, m := range Modes() {
		if m.Name() == name {
			return m, true
		}
	}
	return 0, false
}

// Tick advances the session by one frame. Queued events are applied in
// order first; if any of them changed the state, the tick ends there.
// Otherwise, in Play, the entity, spawner and collision evaluator run in
// that order.
func (s *Session) Tick(in core.InputFrame) StepResult {
	s.events = nil

	changed := false
	for _, ev := range in.Events() {
		if s.handle(ev) {
			changed = true
		}
	}
	if !changed && s.state.Kind == StatePlay && !s.paused {
		s.step(in)
	}

	return StepResult{State: s.Snapshot(), Events: s.events}
}

// handle applies one input event and reports whether the state changed.
func (s *Session) handle(ev core.InputEvent) bool {
	if s.state.Kind == StatePlay {
		s.playInput(ev)
		return false
	}
	next, ok := s.state.On(ev)
	if !ok {
		return false
	}
	s.transition(next)
	return true
}

func (s *Session) playInput(ev core.InputEvent) {
	switch ev.Kind {
	case core.InputKeyPress:
		if ev.Key == core.KeyPause {
			s.paused = !s.paused
			if s.paused {
				s.emit(Event{Kind: EventPaused, Score: s.score})
			} else {
				s.emit(Event{Kind: EventResumed, Score: s.score})
			}
		}
	case core.InputPointerPress:
		if s.paused {
			return
		}
		switch s.state.Mode.Spec().Click {
		case ClickFlap:
			s.player = s.player.Flap()
			s.emit(Event{Kind: EventFlap, Score: s.score})
		case ClickToggleGravity:
			s.player = s.player.ToggleGravity()
			s.emit(Event{Kind: EventGravityToggled, Score: s.score})
		case ClickTongue:
			var ok bool
			if s.tongue, ok = s.tongue.Launch(); ok {
				s.emit(Event{Kind: EventTongueLaunched, Score: s.score})
			}
		case ClickNone:
		}
	}
}

func (s *Session) transition(next State) {
	prev := s.state
	switch {
	case next.Kind == StatePlay:
		s.runs++
		s.configure(next.Mode)
		s.reset(next.Mode)
	case prev.Over() && next.Kind == StateMenu:
		s.reset(prev.Mode)
	}
	s.state = next
	s.emit(Event{Kind: EventStateChanged, From: prev, To: next, Score: s.score})
}

// Abandon drops an unfinished run and returns to the menu. It is a no-op
// outside Play.
func (s *Session) Abandon() StepResult {
	s.events = nil
	if s.state.Kind == StatePlay {
		prev := s.state
		s.reset(prev.Mode)
		s.state = State{Kind: StateMenu, Mode: prev.Mode}
		s.emit(Event{Kind: EventStateChanged, From: prev, To: s.state, Score: s.score})
	}
	return StepResult{State: s.Snapshot(), Events: s.events}
}

// configure builds the difficulty manager and spawner for a mode. Each run
// gets its own seed so replays differ but stay reproducible.
func (s *Session) configure(m Mode) {
	spec := m.Spec()
	s.diff = config.NewDifficultyManager(s.cfg.Difficulty, s.cfg.Pipes.Gap, spec.Progressive)
	s.spawner = NewSpawner(spec.Spawn, s.cfg, s.diff, s.seed+int64(s.runs))
}

// reset clears the run: score, obstacles, pickups and the player back at
// the mode's starting position.
func (s *Session) reset(m Mode) {
	s.score = 0
	s.tick = 0
	s.paused = false
	s.obstacles = s.obstacles[:0]
	s.pickups = s.pickups[:0]
	s.player = s.InitialEntity(m)
	s.tongue = Tongue{
		Tip:   core.Vec{X: s.player.Pos.X, Y: s.tongueRestY()},
		Size:  s.cfg.Frog.TongueSize,
		Speed: s.cfg.Frog.TongueSpeed,
		RestY: s.tongueRestY(),
	}
	if m == ModeFrog {
		s.pickups = append(s.pickups, s.newFly())
	}
}

// InitialEntity returns the player as it starts a run of mode m.
func (s *Session) InitialEntity(m Mode) Entity {
	spec := m.Spec()
	w, h := s.bounds.W, s.bounds.H

	switch m {
	case ModeFalling:
		return Entity{
			Pos:    core.Vec{X: w / 2, Y: h * s.cfg.Falling.BirdY},
			Size:   s.cfg.Bird.Size,
			Motion: MotionConstant,
			Steer:  s.cfg.Bird.Steer,
		}
	case ModeFrog:
		return Entity{
			Pos:    core.Vec{X: w / 2, Y: s.cfg.Frog.BodyY},
			Size:   s.cfg.Frog.BodySize,
			Motion: MotionConstant,
			Steer:  s.cfg.Frog.Steer,
		}
	}

	e := Entity{
		Pos:          core.Vec{X: w / 2, Y: h / 2},
		Size:         s.cfg.Bird.Size,
		Motion:       spec.Motion,
		Gravity:      s.cfg.Bird.Gravity,
		Direction:    1,
		JumpStrength: s.cfg.Bird.JumpStrength,
	}
	if spec.Steer {
		e.Steer = s.cfg.Bird.Steer
	}
	return e
}

func (s *Session) tongueRestY() float64 {
	return s.cfg.Frog.BodyY - s.cfg.Frog.BodySize/2
}

// newFly places a fly at the left edge at a random height.
func (s *Session) newFly() Pickup {
	f := s.cfg.Frog
	baseY := s.spawner.Uniform(f.FlyMinY, f.FlyMaxY)
	return Pickup{
		ID:   s.spawner.id(),
		Kind: PickupFly,
		Body: Entity{
			Pos:        core.Vec{X: 0, Y: baseY},
			Size:       f.FlySize,
			Vel:        core.Vec{X: f.FlySpeed},
			Motion:     MotionSinusoidal,
			BaseY:      baseY,
			AngleSpeed: f.FlyAngleSpeed,
			Amplitude:  f.FlyAmplitude,
		},
		Value: f.FlyValue,
	}
}

// step simulates one play tick.
func (s *Session) step(in core.InputFrame) {
	s.tick++
	mode := s.state.Mode
	spec := mode.Spec()

	// Entity
	ctl := Controls{Left: in.Held(core.KeyLeft), Right: in.Held(core.KeyRight)}
	if spec.Click == ClickTongue {
		if p, ok := in.Pointer(); ok {
			s.player.Pos.X = core.ClampF(p.X, 0, s.bounds.W)
		}
	}
	s.player = s.player.Update(s.bounds, ctl)
	if spec.Click == ClickTongue {
		s.tongue = s.tongue.Update(s.player.Pos.X)
	}

	// Spawner, then everything moves
	s.spawn()
	for i := range s.obstacles {
		o := s.obstacles[i].Advance(s.cfg.Pipes.Speed)
		if spec.Spawn == SpawnWavyPipes {
			o = o.Wobble(s.cfg.Pipes.BandTop, s.bounds.H-s.cfg.Pipes.BandBase)
		}
		s.obstacles[i] = o
	}
	for i := range s.pickups {
		p := &s.pickups[i]
		p.Body = p.Body.Update(s.bounds, Controls{})
		if p.Kind == PickupFly && p.Body.Pos.X > s.bounds.W {
			*p = s.newFly()
		}
	}

	// Collisions
	collectibles := s.pickups
	if mode == ModeFrog {
		collectibles = nil
	}
	out := Evaluate(s.player, s.obstacles, collectibles, Rules{
		Bounds:         s.bounds,
		SideWallsFatal: spec.SideWallsFatal,
	})
	if out.Scored > 0 {
		s.score += out.Scored
		s.emit(Event{Kind: EventScored, Score: s.score, Points: out.Scored})
	}
	for _, id := range out.Collected {
		s.collect(id)
	}
	if mode == ModeFrog {
		s.catchFly()
	}

	switch {
	case out.Collided:
		s.transition(State{Kind: StateLose, Mode: mode})
	case s.wins[mode] > 0 && s.score >= s.wins[mode]:
		s.transition(State{Kind: StateWin, Mode: mode})
	}

	s.cull()
}

func (s *Session) spawn() {
	edge := s.spawner.Edge()
	sp, ok := s.spawner.MaybeSpawn(s.tick, s.score)
	if e := s.spawner.Edge(); e != edge {
		s.emit(Event{Kind: EventEdgeChanged, Edge: e, Score: s.score})
	}
	if !ok {
		return
	}
	s.obstacles = append(s.obstacles, sp.Obstacle)
	s.emit(Event{Kind: EventSpawned, ID: sp.Obstacle.ID, Score: s.score})
	if sp.HasPickup {
		s.pickups = append(s.pickups, sp.Pickup)
	} else if sp.CoinAttempts > 0 {
		s.emit(Event{Kind: EventCoinSkipped, ID: sp.Obstacle.ID, Score: s.score})
	}
}

func (s *Session) collect(id int) {
	for i, p := range s.pickups {
		if p.ID != id {
			continue
		}
		s.score += p.Value
		s.pickups = append(s.pickups[:i], s.pickups[i+1:]...)
		s.emit(Event{Kind: EventCollected, ID: id, Points: p.Value, Score: s.score})
		return
	}
}

func (s *Session) catchFly() {
	for i, p := range s.pickups {
		if p.Kind != PickupFly || !s.tongue.Catches(p) {
			continue
		}
		s.score += p.Value
		s.pickups[i] = s.newFly()
		s.tongue = s.tongue.Retract()
		s.emit(Event{Kind: EventCaught, ID: p.ID, Points: p.Value, Score: s.score})
	}
}

// cull drops obstacles and pickups that have left the playfield.
func (s *Session) cull() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.Gone(s.bounds) {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	keptP := s.pickups[:0]
	for _, p := range s.pickups {
		if !p.Gone(s.bounds) {
			keptP = append(keptP, p)
		}
	}
	s.pickups = keptP
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Snapshot returns a read-only view of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.state,
		Score:    s.score,
		Paused:   s.paused,
		Tick:     s.tick,
		WinScore: s.wins[s.state.Mode],
	}
	if s.diff != nil {
		snap.Stage = s.diff.Stage(s.score)
		snap.Level = s.diff.Level(s.score)
	}
	return snap
}

// State returns the active state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Player returns the player entity.
func (s *Session) Player() Entity {
	return s.player
}

// Tongue returns the frog's tongue.
func (s *Session) Tongue() Tongue {
	return s.tongue
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Pickups returns the live pickups. The slice must not be modified.
func (s *Session) Pickups() []Pickup {
	return s.pickups
}

// Bounds returns the playfield size.
func (s *Session) Bounds() Bounds {
	return s.bounds
}
