package factory

import (
	"github.com/automoto/tumbang-preso/archetypes"
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound creates the round state singleton in Idle.
func CreateRound(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Round.Spawn(ecs)
	countdown := components.NewCountdown(cfg.Round.Duration, cfg.Round.TickStep, cfg.Round.TickInterval)
	components.Round.SetValue(e, components.NewRoundData(countdown))
	return e
}

// CreateAim creates the trajectory preview singleton.
func CreateAim(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Aim.Spawn(ecs)
	components.Aim.SetValue(e, components.AimData{Enabled: cfg.Trajectory.Enabled})
	return e
}

// CreateHUD creates the HUD animation singleton.
func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.HUD.Spawn(ecs)
	pop := gween.New(cfg.HUD.ScorePopScale, 1, cfg.HUD.ScorePopLength, ease.OutBack)
	// Start settled so there is no pop before the first point
	pop.Update(cfg.HUD.ScorePopLength)
	components.HUD.SetValue(e, components.HUDData{
		WarningPulse: gween.New(1, 0, cfg.HUD.PulseDuration, ease.InOutSine),
		ScorePop:     pop,
		ScoreScale:   1,
	})
	return e
}

// CreateInput creates the input singleton.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(e, components.InputData{})
	return e
}

// CreateAudio creates the sound cue queue singleton.
func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(e, components.AudioData{})
	return e
}
