package systems

import (
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAim recomputes the release arc for the held slipper. The preview is
// hidden while the slipper is in flight or the holder is past the foul line.
func UpdateAim(ecs *ecs.ECS) {
	aim := components.Aim.Get(components.Aim.MustFirst(ecs.World))

	if getInput(ecs).Action(cfg.ActionTogglePreview).JustPressed {
		aim.Enabled = !aim.Enabled
	}

	aim.Visible = false
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !aim.Enabled {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Slipper == nil || !player.Slipper.Valid() {
		return
	}
	slipper := components.Slipper.Get(player.Slipper)
	if !slipper.IsHeld() || !player.InZone(cfg.Field.FoulLineZ) {
		return
	}

	origin, _ := player.Attach(slipper.Grip.Offset, slipper.Grip.Rotation)
	velocity := gamemath.CalculateLaunchVelocity(player.Forward(), cfg.Throw.LaunchSpeed)
	aim.Points = gamemath.PredictTrajectory(
		origin,
		velocity,
		cfg.Physics.Gravity,
		cfg.Trajectory.Horizon,
		cfg.Trajectory.Samples,
		cfg.Physics.GroundY-cfg.Trajectory.FloorMargin,
	)
	aim.Impact, aim.HasImpact = gamemath.ImpactPoint(aim.Points, cfg.Physics.GroundY+cfg.Trajectory.ImpactHeight)
	aim.Range = 0
	if aim.HasImpact {
		aim.Range = gamemath.HorizontalDistance(origin, aim.Impact)
	}
	aim.Visible = true
}
