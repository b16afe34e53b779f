package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundThrow
	SoundPickup
	SoundKnockdown
	SoundWarningTick
	SoundScore
	SoundExpired
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Buffer     time.Duration
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
}

// Tone describes one synthesized cue: a frequency sweep with an
// attack/release envelope.
type Tone struct {
	Wave      WaveType
	StartFreq float64
	EndFreq   float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Gain      float64
}

// WaveType selects the oscillator shape of a tone
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundConfig maps sound IDs to their tones. A cue may layer several.
type SoundConfig struct {
	Cues map[SoundID][]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Buffer:     100 * time.Millisecond,
		SFXVolume:  0.6,
	}

	Sound = SoundConfig{
		Cues: map[SoundID][]Tone{
			SoundThrow: {
				{Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 180 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 140 * time.Millisecond, Gain: 0.25},
				{Wave: WaveSine, StartFreq: 320, EndFreq: 180, Duration: 180 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 150 * time.Millisecond, Gain: 0.2},
			},
			SoundPickup: {
				{Wave: WaveSine, StartFreq: 500, EndFreq: 700, Duration: 90 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond, Gain: 0.3},
			},
			SoundKnockdown: {
				{Wave: WaveSquare, StartFreq: 180, EndFreq: 60, Duration: 260 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 220 * time.Millisecond, Gain: 0.35},
				{Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 120 * time.Millisecond, Attack: 1 * time.Millisecond, Release: 100 * time.Millisecond, Gain: 0.3},
			},
			SoundWarningTick: {
				{Wave: WaveSine, StartFreq: 1200, EndFreq: 1200, Duration: 50 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 40 * time.Millisecond, Gain: 0.25},
			},
			SoundScore: {
				{Wave: WaveSine, StartFreq: 660, EndFreq: 660, Duration: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond, Gain: 0.3},
				{Wave: WaveSine, StartFreq: 990, EndFreq: 990, Duration: 240 * time.Millisecond, Attack: 60 * time.Millisecond, Release: 150 * time.Millisecond, Gain: 0.25},
			},
			SoundExpired: {
				{Wave: WaveSaw, StartFreq: 220, EndFreq: 110, Duration: 600 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 400 * time.Millisecond, Gain: 0.3},
			},
		},
	}
}
