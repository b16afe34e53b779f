package systems

import (
	"github.com/automoto/tumbang-preso/audio"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/yohamta/donburi/ecs"
)

// Output device shared across scenes. Nil until UseAudio is called, in
// which case queued cues are simply discarded.
var soundManager *audio.Manager

// UseAudio sets the device UpdateAudio plays through.
func UseAudio(m *audio.Manager) {
	soundManager = m
}

// UpdateAudio plays every cue queued this frame. Runs after the gameplay
// systems.
func UpdateAudio(ecs *ecs.ECS) {
	for _, id := range getAudio(ecs).Drain() {
		if soundManager != nil {
			soundManager.Play(id)
		}
	}
}

func queueSound(ecs *ecs.ECS, id cfg.SoundID) {
	getAudio(ecs).Queue(id)
}

func getAudio(ecs *ecs.ECS) *components.AudioData {
	return components.Audio.Get(components.Audio.MustFirst(ecs.World))
}
