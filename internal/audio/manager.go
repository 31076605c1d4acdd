// Package audio plays short generated sound cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Manager owns the speaker and mixes cues into it.
// All methods are safe to call before Initialize and after Close; they do nothing then.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a manager playing at the given volume (0-1).
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device. Fails when no device is available.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops every playing cue.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// LineClear plays the chime for rows cleared rows.
func (m *Manager) LineClear(rows int) {
	m.play(Chime(rows, m.volume))
}

// GameOver plays the game-over buzz.
func (m *Manager) GameOver() {
	m.play(Buzz(m.volume))
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
