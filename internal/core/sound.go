package core

// SoundID identifies a sound the game can ask the audio subsystem to play.
type SoundID int

const (
	SoundMusic     SoundID = iota // Looping background music
	SoundExplosion                // One-shot dragon explosion
	SoundVictory                  // One-shot victory fanfare
)

// String returns the sound's name.
func (id SoundID) String() string {
	switch id {
	case SoundMusic:
		return "music"
	case SoundExplosion:
		return "explosion"
	case SoundVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Audio is the audio subsystem as seen by the game.
type Audio interface {
	Play(id SoundID)
	StopMusic()
	SetMuted(muted bool)
}

// NopAudio discards every request. Used for headless and remote sessions.
type NopAudio struct{}

func (NopAudio) Play(SoundID)  {}
func (NopAudio) StopMusic()    {}
func (NopAudio) SetMuted(bool) {}

var _ Audio = NopAudio{}
