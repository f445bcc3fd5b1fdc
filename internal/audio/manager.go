package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager plays synthesised effects through the system speaker.
type Manager struct {
	mu          sync.Mutex
	initialized bool
	seed        int64
}

// NewManager creates a manager. Call Initialize before sounds are audible.
func NewManager() *Manager {
	return &Manager{seed: time.Now().UnixNano()}
}

// Initialize opens the speaker.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	m.initialized = true
	return nil
}

// Close silences everything still playing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// Play starts the effect and returns immediately. Before Initialize, or after
// Close, it is a no-op.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.seed++
	speaker.Play(streamerFor(s, sampleRate, m.seed))
}

// streamerFor builds a fresh one-shot streamer for the sound at its mix volume.
func streamerFor(s Sound, sr beep.SampleRate, seed int64) beep.Streamer {
	switch s {
	case SoundLaser:
		return halfVolume(newLaserStreamer(sr))
	case SoundExplosion:
		return halfVolume(newExplosionStreamer(sr, seed))
	case SoundDamage:
		return newDamageStreamer(sr)
	default:
		return beep.Silence(0)
	}
}

// halfVolume scales amplitude by 0.5 (2^-1).
func halfVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   -1,
	}
}

var _ Sink = (*Manager)(nil)
var _ Sink = Nop{}
