// Package audio synthesizes and plays the game's sound cues. There are no
// sample files: every cue is a short oscillator sweep under an envelope.
package audio

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/tumbang-preso/config"
	"github.com/gopxl/beep"
)

// sweep is an oscillator whose frequency glides linearly across its length.
type sweep struct {
	tone     config.Tone
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	total    int
}

func newSweep(t config.Tone, rate beep.SampleRate, rng *rand.Rand) *sweep {
	return &sweep{tone: t, rate: rate, rng: rng, total: rate.N(t.Duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.tone.Wave {
		case config.WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case config.WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case config.WaveSaw:
			val = 2 * (s.phase - 0.5)
		case config.WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		val *= s.tone.Gain * s.envelope()

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.total)
		freq := s.tone.StartFreq + (s.tone.EndFreq-s.tone.StartFreq)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope is a linear attack and release around a flat sustain.
func (s *sweep) envelope() float64 {
	attack := s.rate.N(s.tone.Attack)
	release := s.rate.N(s.tone.Release)
	if s.position < attack && attack > 0 {
		return float64(s.position) / float64(attack)
	}
	if left := s.total - s.position; left < release && release > 0 {
		return float64(left) / float64(release)
	}
	return 1
}

// Cue builds the streamer for a sound. Layered tones are mixed. Unknown ids
// yield nil.
func Cue(id config.SoundID, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	tones, ok := config.Sound.Cues[id]
	if !ok || len(tones) == 0 {
		return nil
	}
	layers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		layers = append(layers, newSweep(t, rate, rng))
	}
	if len(layers) == 1 {
		return layers[0]
	}
	return beep.Mix(layers...)
}
