// Package audio synthesizes and plays the game's sounds with beep.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio. Every sound goes through one
// mixer behind a master volume, so muting silences everything at once.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	muted       bool
	initialized bool
}

var _ core.Audio = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	mixer := &beep.Mixer{}
	master := newVolume(mixer, cfg.Volume)
	sm := &SoundManager{
		mixer:  mixer,
		master: master,
		muted:  cfg.Muted || cfg.Volume <= 0,
	}
	master.Silent = sm.muted
	return sm
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Play starts a sound. Music keeps playing if already running.
func (sm *SoundManager) Play(id core.SoundID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch id {
	case core.SoundMusic:
		if sm.music != nil {
			return
		}
		sm.music = &beep.Ctrl{Streamer: CreateMusic(sampleRate)}
		s = sm.music
	case core.SoundExplosion:
		s = CreateExplosion(sampleRate)
	case core.SoundVictory:
		s = CreateVictory(sampleRate)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StopMusic stops the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}

	speaker.Lock()
	// A nil streamer ends the Ctrl, so the mixer drops it
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// SetMuted silences or restores all sounds.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		sm.master.Silent = muted
		return
	}

	speaker.Lock()
	sm.master.Silent = muted
	speaker.Unlock()
}

// Muted reports whether sound is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
