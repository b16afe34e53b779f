package components

import (
	"time"

	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/yohamta/donburi"
)

// RoundSample is what the coordinator reads from the world each tick.
type RoundSample struct {
	Fallen bool // can's sticky knockdown classification
	Held   bool // slipper is in the player's hand
	InZone bool // player is behind the foul line
}

// RoundEvent is the outcome of one Advance call.
type RoundEvent int

const (
	RoundNoChange RoundEvent = iota
	RoundKnockdown
	RoundScored
	RoundExpired
	RoundRestarted
)

func (e RoundEvent) String() string {
	switch e {
	case RoundKnockdown:
		return "knockdown"
	case RoundScored:
		return "scored"
	case RoundExpired:
		return "expired"
	case RoundRestarted:
		return "restarted"
	default:
		return "none"
	}
}

// RoundData is the single owned round state. Singleton; only the round
// system mutates it.
type RoundData struct {
	Phase         cfg.RoundPhaseID
	Score         int
	Countdown     Countdown
	InZone        bool
	InputCaptured bool

	prevFallen bool
}

var Round = donburi.NewComponentType[RoundData]()

// NewRoundData creates an idle round with a stopped countdown.
func NewRoundData(countdown Countdown) RoundData {
	return RoundData{
		Phase:         cfg.PhaseIdle,
		Countdown:     countdown,
		InputCaptured: true,
	}
}

// Advance applies one sampled tick. Every (phase, sample) pair is handled;
// anything not matching a transition leaves the phase as it was.
func (r *RoundData) Advance(s RoundSample, now time.Time) RoundEvent {
	rising := s.Fallen && !r.prevFallen
	r.prevFallen = s.Fallen
	r.InZone = s.InZone

	switch r.Phase {
	case cfg.PhaseIdle:
		if rising {
			r.Phase = cfg.PhaseAwaitingReset
			r.Countdown.Start(now)
			return RoundKnockdown
		}

	case cfg.PhaseAwaitingReset:
		if s.Held && s.InZone {
			r.Score++
			r.Countdown.Stop()
			r.Countdown.Reset()
			r.Phase = cfg.PhaseIdle
			// the can is stood back up by the caller in this same tick
			r.prevFallen = false
			return RoundScored
		}
		r.Countdown.Poll(now)
		if r.Countdown.Done() {
			r.Phase = cfg.PhaseExpired
			r.InputCaptured = false
			return RoundExpired
		}

	case cfg.PhaseExpired:
	}
	return RoundNoChange
}

// Restart leaves Expired for a fresh Idle round. Ignored in other phases.
func (r *RoundData) Restart() bool {
	if r.Phase != cfg.PhaseExpired {
		return false
	}
	r.Score = 0
	r.Countdown.Stop()
	r.Countdown.Reset()
	r.Phase = cfg.PhaseIdle
	r.prevFallen = false
	r.InputCaptured = true
	return true
}

// CountdownRemaining is the displayed countdown value.
func (r *RoundData) CountdownRemaining() float64 {
	return r.Countdown.Remaining()
}

// Warning reports whether the countdown display should be in warning style.
func (r *RoundData) Warning(threshold float64) bool {
	return r.Phase == cfg.PhaseAwaitingReset && r.Countdown.Remaining() < threshold
}
