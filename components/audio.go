package components

import (
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues raised by gameplay systems for the audio
// system to play at the end of the frame. Singleton.
type AudioData struct {
	PendingSFX []cfg.SoundID

	// whole second of the countdown last announced with a warning tick
	LastTickSecond int
}

var Audio = donburi.NewComponentType[AudioData]()

// Queue schedules a cue. SoundNone is ignored.
func (a *AudioData) Queue(id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	a.PendingSFX = append(a.PendingSFX, id)
}

// Drain returns the queued cues and empties the queue.
func (a *AudioData) Drain() []cfg.SoundID {
	pending := a.PendingSFX
	a.PendingSFX = nil
	return pending
}
