package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/automoto/tumbang-preso/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Manager owns the speaker and a mixer that cues are added to. A Manager
// that was never initialized accepts Play calls and drops them.
type Manager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
}

// NewManager creates an uninitialized manager.
func NewManager() *Manager {
	return &Manager{
		rate:  beep.SampleRate(config.Audio.SampleRate),
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewPCG(1, 2)),
	}
}

// Initialize opens the audio device and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(config.Audio.Buffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(&effects.Volume{
		Streamer: m.mixer,
		Base:     2,
		Volume:   volumeExponent(config.Audio.SFXVolume),
		Silent:   config.Audio.Muted || config.Audio.SFXVolume <= 0,
	})
	m.initialized = true
	return nil
}

// Play starts a cue on top of whatever is already playing.
func (m *Manager) Play(id config.SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	cue := Cue(id, m.rate, m.rng)
	if cue == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(cue)
	speaker.Unlock()
}

// Initialized reports whether the device is open.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// volumeExponent maps a linear 0..1 volume to beep's base-2 exponent.
func volumeExponent(v float64) float64 {
	if v <= 0 {
		return -10
	}
	return math.Log2(v)
}
