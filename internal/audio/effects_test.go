package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
)

// drain streams s until it ends or limit samples have been read.
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}

	for _, w := range waves {
		osc := NewOscillator(440, 100*time.Millisecond, w, rate)
		total, peak := drain(osc, rate.N(time.Second))

		if total != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", w, total, rate.N(100*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", w, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", w, osc.Err())
		}
	}
}

func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 0, rate)

	buf := make([][2]float64, 200)
	env.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0", buf[0][0])
	}
	if buf[50][0] < 0.49 || buf[50][0] > 0.51 {
		t.Errorf("mid-attack sample = %f, expected 0.5", buf[50][0])
	}
	if buf[150][0] != 1 {
		t.Errorf("post-attack sample = %f, expected 1", buf[150][0])
	}
}

func TestSoundEffectsFinite(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		s    beep.Streamer
		max  time.Duration
	}{
		{"explosion", CreateExplosion(rate), time.Second},
		{"victory", CreateVictory(rate), 2 * time.Second},
	}

	for _, tc := range tests {
		total, peak := drain(tc.s, rate.N(10*time.Second))
		if total == 0 || total > rate.N(tc.max) {
			t.Errorf("%s: %d samples, expected within (0, %d]", tc.name, total, rate.N(tc.max))
		}
		if peak == 0 {
			t.Errorf("%s: silent", tc.name)
		}
	}
}

func TestMusicLoops(t *testing.T) {
	rate := beep.SampleRate(44100)
	limit := rate.N(5 * time.Second)

	total, peak := drain(CreateMusic(rate), limit)
	if total < limit {
		t.Errorf("music ended after %d samples, expected it to loop", total)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("music peak = %f, expected within (0, 1]", peak)
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	v := newVolume(NewOscillator(440, time.Millisecond, WaveSine, 44100), 0)
	if !v.Silent {
		t.Error("zero level should be silent")
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	// Without Initialize nothing reaches the speaker
	sm := NewSoundManager(config.AudioConfig{Volume: 1})

	var a core.Audio = sm
	a.Play(core.SoundMusic)
	if sm.music != nil {
		t.Error("music should not start before Initialize")
	}

	a.SetMuted(true)
	if !sm.Muted() {
		t.Error("SetMuted(true) should be remembered")
	}
	a.StopMusic()
	sm.Cleanup()

	if !NewSoundManager(config.AudioConfig{Volume: 1, Muted: true}).Muted() {
		t.Error("configured mute should apply")
	}
}
