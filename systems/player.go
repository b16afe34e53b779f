package systems

import (
	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies mouse look and WASD movement to the holder. Movement
// is resolved on the ground plane against the field walls and the can.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := getInput(ecs)
	dt := getClock(ecs).Delta

	handleLook(input, player)

	var forward, strafe float64
	if input.Action(cfg.ActionMoveForward).Pressed {
		forward++
	}
	if input.Action(cfg.ActionMoveBack).Pressed {
		forward--
	}
	if input.Action(cfg.ActionStrafeRight).Pressed {
		strafe++
	}
	if input.Action(cfg.ActionStrafeLeft).Pressed {
		strafe--
	}
	if forward == 0 && strafe == 0 {
		return
	}

	// Walk on the ground plane regardless of pitch
	fwd := gamemath.FrameForward(player.Yaw, 0)
	right := fwd.Cross(gamemath.Up)
	move := gamemath.SafeNormalize(fwd.Mul(forward).Add(right.Mul(strafe))).Mul(cfg.Player.MoveSpeed * dt)

	obj := components.Object.Get(playerEntry).Object
	movePlayerObject(obj, move.X(), move.Z())

	x, z := cfg.Field.FromSpace(obj.X+obj.W/2, obj.Y+obj.H/2)
	player.Position = mgl64.Vec3{x, player.Position.Y(), z}
}

func handleLook(input *components.InputData, player *components.PlayerData) {
	if input.LookDX == 0 && input.LookDY == 0 {
		return
	}
	sens := cfg.Player.MouseSensitivity
	player.Yaw -= input.LookDX * sens
	player.Pitch = gamemath.Clamp(player.Pitch-input.LookDY*sens, -cfg.Player.MaxPitch, cfg.Player.MaxPitch)
}

// movePlayerObject moves the footprint one axis at a time, stopping at the
// contact point of anything solid.
func movePlayerObject(obj *resolv.Object, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid, tags.ResolvCan); check != nil {
			dx = check.ContactWithObject(check.Objects[0]).X()
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid, tags.ResolvCan); check != nil {
			dy = check.ContactWithObject(check.Objects[0]).Y()
		}
		obj.Y += dy
	}
	obj.Update()
}
