package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdjam/internal/game"
	"github.com/vovakirdan/birdjam/internal/platform/audio"
)

// CuePlayer plays sound cues. *audio.Player satisfies it.
type CuePlayer interface {
	Play(c audio.Cue)
}

type silent struct{}

func (silent) Play(audio.Cue) {}

// Reporter turns tick events into log lines and sound cues.
type Reporter struct {
	logger *log.Logger
	sound  CuePlayer
	runs   int
}

// NewReporter creates a reporter. A nil sound player means no sound.
func NewReporter(logger *log.Logger, sound CuePlayer) *Reporter {
	if sound == nil {
		sound = silent{}
	}
	return &Reporter{logger: logger, sound: sound}
}

// Runs returns the number of finished runs seen so far.
func (r *Reporter) Runs() int {
	return r.runs
}

// Report handles the events of one tick.
func (r *Reporter) Report(res game.StepResult) {
	for _, ev := range res.Events {
		r.event(ev, res.State)
	}
}

func (r *Reporter) event(ev game.Event, snap game.Snapshot) {
	switch ev.Kind {
	case game.EventStateChanged:
		r.logger.Info("state", "from", ev.From, "to", ev.To)
		switch ev.To.Kind {
		case game.StateLose:
			r.sound.Play(audio.CueCrash)
			r.runEnded(ev.To, snap)
		case game.StateWin:
			r.sound.Play(audio.CueWin)
			r.runEnded(ev.To, snap)
		}
	case game.EventPaused, game.EventResumed:
		r.logger.Info(ev.Kind.String(), "score", ev.Score)
	case game.EventFlap, game.EventGravityToggled:
		r.sound.Play(audio.CueFlap)
	case game.EventTongueLaunched:
		r.sound.Play(audio.CueTongue)
	case game.EventSpawned:
		r.logger.Debug("spawn", "id", ev.ID, "tick", snap.Tick, "gap", snap.Stage.GapSize)
	case game.EventCoinSkipped:
		r.logger.Debug("coin skipped", "obstacle", ev.ID)
	case game.EventEdgeChanged:
		r.logger.Info("spawn edge", "edge", ev.Edge)
	case game.EventScored:
		r.logger.Info("scored", "points", ev.Points, "score", ev.Score)
		r.sound.Play(audio.CueScore)
	case game.EventCollected:
		r.logger.Info("coin", "id", ev.ID, "points", ev.Points, "score", ev.Score)
		r.sound.Play(audio.CueCoin)
	case game.EventCaught:
		r.logger.Info("fly caught", "points", ev.Points, "score", ev.Score)
		r.sound.Play(audio.CueCatch)
	}
}

func (r *Reporter) runEnded(st game.State, snap game.Snapshot) {
	r.runs++
	r.logger.Info("run ended",
		"mode", st.Mode,
		"result", st.Kind,
		"score", snap.Score,
		"ticks", snap.Tick,
	)
}
