package systems

import (
	"log"

	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/automoto/tumbang-preso/physics"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateThrow turns throw and pickup presses into slipper mode changes.
func UpdateThrow(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Slipper == nil || !player.Slipper.Valid() {
		return
	}
	slipper := components.Slipper.Get(player.Slipper)
	input := getInput(ecs)
	world := getPhysicsWorld(ecs)

	if input.Action(cfg.ActionThrow).JustPressed {
		throw := components.Throw.Get(components.Throw.MustFirst(ecs.World))
		if ThrowSlipper(player, slipper, throw, world) {
			queueSound(ecs, cfg.SoundThrow)
			log.Printf("Slipper thrown from z=%.1f", player.Position.Z())
		} else if cfg.Debug.LogInput {
			log.Printf("Throw ignored: held=%v in zone=%v", slipper.IsHeld(), player.InZone(cfg.Field.FoulLineZ))
		}
	}

	if input.Action(cfg.ActionPickup).JustPressed {
		if slipper.Pickup(world, player.Position, cfg.Slipper.PickupRadius) {
			queueSound(ecs, cfg.SoundPickup)
			log.Println("Slipper picked up")
		} else if cfg.Debug.LogInput {
			log.Printf("Pickup ignored: held=%v", slipper.IsHeld())
		}
	}
}

// ThrowSlipper releases the held slipper along the holder's aim axis with a
// randomized tumble. Returns false when the release was swallowed; a
// swallowed release draws nothing from the spin source.
func ThrowSlipper(player *components.PlayerData, slipper *components.SlipperData, throw *components.ThrowData, world *physics.World) bool {
	inZone := player.InZone(cfg.Field.FoulLineZ)
	if !slipper.IsHeld() || !inZone {
		return false
	}
	pos, rot := player.Attach(slipper.Grip.Offset, slipper.Grip.Rotation)
	launch := components.LaunchParams{
		Velocity:        gamemath.CalculateLaunchVelocity(player.Forward(), cfg.Throw.LaunchSpeed),
		AngularVelocity: gamemath.CalculateThrowSpin(throw.Rng, cfg.Throw.TumbleMagnitude, cfg.Throw.SpinMagnitude),
	}
	if !slipper.Release(world, inZone, pos, rot, launch) {
		return false
	}
	throw.Throws++
	return true
}
