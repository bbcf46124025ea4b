package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential decay
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decay    float64 // per-second decay rate after the attack
	rate     beep.SampleRate
}

// NewEnvelope shapes s with a linear attack followed by exp(-decay*t).
func NewEnvelope(s beep.Streamer, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		decay:    decay,
		rate:     rate,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			t := float64(e.position-e.attack) / float64(e.rate)
			vol = math.Exp(-e.decay * t)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear level. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, level float64) *effects.Volume {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}

// Note frequencies used by the fanfare and the music loop.
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// CreateExplosion generates a short noise burst over a falling rumble.
func CreateExplosion(rate beep.SampleRate) beep.Streamer {
	const d = 600 * time.Millisecond

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), 5*time.Millisecond, 7, rate)
	rumble := NewEnvelope(NewOscillator(70, d, WaveSaw, rate), 10*time.Millisecond, 5, rate)

	return beep.Mix(
		newVolume(noise, 0.45),
		newVolume(rumble, 0.35),
	)
}

// CreateVictory generates a rising four-note fanfare.
func CreateVictory(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64, d time.Duration) beep.Streamer {
		return NewEnvelope(NewOscillator(freq, d, WaveSquare, rate), 8*time.Millisecond, 3, rate)
	}
	fanfare := beep.Seq(
		note(noteC5, 150*time.Millisecond),
		note(noteE5, 150*time.Millisecond),
		note(noteG5, 150*time.Millisecond),
		note(noteC6, 700*time.Millisecond),
	)
	return newVolume(fanfare, 0.25)
}

// melody loops a note pattern forever.
type melody struct {
	rate    beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
	phase   float64
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.noteLen) % len(m.notes)
		inNote := m.pos % m.noteLen

		// Short fade at both ends of each note avoids clicks
		env := 1.0
		fade := m.noteLen / 10
		if inNote < fade {
			env = float64(inNote) / float64(fade)
		} else if m.noteLen-inNote < fade {
			env = float64(m.noteLen-inNote) / float64(fade)
		}

		val := (4*math.Abs(m.phase-0.5) - 1) * env
		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.notes[idx] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// CreateMusic generates the endless background loop: a triangle-wave
// melody over a quiet sine drone.
func CreateMusic(rate beep.SampleRate) beep.Streamer {
	lead := &melody{
		rate:    rate,
		notes:   []float64{noteC4, noteE4, noteG4, noteE4, noteA4, noteG4, noteE4, noteG4},
		noteLen: rate.N(300 * time.Millisecond),
	}

	drone, err := generators.SineTone(rate, noteC4/2)
	if err != nil {
		return newVolume(lead, 0.12)
	}

	return beep.Mix(
		newVolume(lead, 0.12),
		newVolume(drone, 0.05),
	)
}
