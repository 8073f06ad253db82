// Package audio plays short procedural sound cues. Nothing is loaded from
// disk; every cue is a handful of sine notes.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a game sound.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueCoin
	CueTongue
	CueCatch
	CueCrash
	CueWin
	cueCount
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueCoin:
		return "coin"
	case CueTongue:
		return "tongue"
	case CueCatch:
		return "catch"
	case CueCrash:
		return "crash"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64 // Hz; 0 is a rest
	dur  time.Duration
}

var melodies = [cueCount][]note{
	CueFlap:   {{523, 30 * time.Millisecond}},
	CueScore:  {{880, 60 * time.Millisecond}},
	CueCoin:   {{988, 50 * time.Millisecond}, {1319, 90 * time.Millisecond}},
	CueTongue: {{330, 40 * time.Millisecond}},
	CueCatch:  {{660, 40 * time.Millisecond}, {990, 60 * time.Millisecond}},
	CueCrash:  {{196, 120 * time.Millisecond}, {147, 200 * time.Millisecond}},
	CueWin: {
		{523, 90 * time.Millisecond},
		{659, 90 * time.Millisecond},
		{784, 90 * time.Millisecond},
		{1047, 220 * time.Millisecond},
	},
}

// Duration returns how long cue c plays.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range melodies[c] {
		d += n.dur
	}
	return d
}

// Tone builds the streamer for cue c at the given sample rate and volume
// (0..1).
func Tone(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	if c < 0 || c >= cueCount {
		return nil, errUnknownCue(c)
	}

	parts := make([]beep.Streamer, 0, len(melodies[c]))
	for _, n := range melodies[c] {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.dur)))
			continue
		}
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, fade(beep.Take(sr.N(n.dur), sine), sr.N(n.dur), sr.N(5*time.Millisecond)))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

type errUnknownCue Cue

func (e errUnknownCue) Error() string {
	return "audio: unknown cue " + Cue(e).String()
}

// fade ramps the first and last ramp samples of s to avoid clicks.
func fade(s beep.Streamer, total, ramp int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1.0
			if pos < ramp {
				gain = float64(pos) / float64(ramp)
			}
			if left := total - pos; left < ramp {
				gain = math.Min(gain, float64(left)/float64(ramp))
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
