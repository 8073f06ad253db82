package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) (samples [][2]float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok || n == 0 {
			return samples
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(8000)

	for c := Cue(0); c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s, err := Tone(c, sr, 0.5)
			if err != nil {
				t.Fatalf("Tone() error = %v", err)
			}
			got := drain(s)

			want := 0
			for _, n := range melodies[c] {
				want += sr.N(n.dur)
			}
			if len(got) != want {
				t.Errorf("len(samples) = %d, expected %d", len(got), want)
			}
			for i, smp := range got {
				if smp[0] < -1 || smp[0] > 1 || smp[0] != smp[1] {
					t.Fatalf("sample %d = %v, expected equal channels in [-1, 1]", i, smp)
				}
			}
			if got[0][0] != 0 {
				t.Errorf("first sample = %v, expected a faded-in 0", got[0][0])
			}
		})
	}
}

func TestToneSilentAtZeroVolume(t *testing.T) {
	s, err := Tone(CueWin, beep.SampleRate(8000), 0)
	if err != nil {
		t.Fatalf("Tone() error = %v", err)
	}
	for i, smp := range drain(s) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, smp)
		}
	}
}

func TestToneUnknownCue(t *testing.T) {
	if _, err := Tone(cueCount, beep.SampleRate(8000), 1); err == nil {
		t.Error("Tone(cueCount) should fail")
	}
}

func TestDuration(t *testing.T) {
	if d := Duration(CueWin); d.Milliseconds() != 490 {
		t.Errorf("Duration(CueWin) = %v, expected 490ms", d)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1)
	p.Play(CueCoin) // must not touch the speaker
	p.Close()
}
