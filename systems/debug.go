package systems

import (
	"fmt"
	"math"

	"github.com/automoto/tumbang-preso/components"
	cfg "github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/fonts"
	"github.com/automoto/tumbang-preso/gamemath"
	"github.com/automoto/tumbang-preso/physics"
	"github.com/automoto/tumbang-preso/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders simulation diagnostics in the lower-left corner and the
// field space footprints as a minimap. Enabled with -debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	face := fonts.Mono.Get()
	world := getPhysicsWorld(ecs)
	round := getRound(ecs)

	lines := []string{
		fmt.Sprintf("steps %d  acc %.4f  bodies %d", world.StepCount(), world.Accumulator(), len(world.Bodies())),
		fmt.Sprintf("phase %s  ticks %d", round.Phase, round.Countdown.Ticks()),
	}
	if canEntry, ok := tags.Can.First(ecs.World); ok {
		can := components.Can.Get(canEntry)
		tilt := gamemath.TiltFromVertical(can.Body.Orientation) * 180 / math.Pi
		lines = append(lines, fmt.Sprintf("can %s tilt %.1f fallen %v", sleepLabel(can.Body), tilt, can.Fallen))
	}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		p := player.Position
		lines = append(lines, fmt.Sprintf("player %.1f %.1f %.1f yaw %.2f pitch %.2f", p.X(), p.Y(), p.Z(), player.Yaw, player.Pitch))
		if player.Slipper != nil && player.Slipper.Valid() {
			s := components.Slipper.Get(player.Slipper)
			mode := cfg.SlipperThrown
			if s.IsHeld() {
				mode = cfg.SlipperHeld
			}
			lines = append(lines, fmt.Sprintf("slipper %s %s in world %v", mode, sleepLabel(s.Body), world.Has(s.Body)))
		}
	}
	if aim := components.Aim.Get(components.Aim.MustFirst(ecs.World)); aim.Visible && aim.HasImpact {
		lines = append(lines, fmt.Sprintf("aim range %.1f impact z %.1f", aim.Range, aim.Impact.Z()))
	}

	height := float64(screen.Bounds().Dy())
	y := height - cfg.HUD.Margin - float64(len(lines)+1)*cfg.HUD.LineHeight
	for _, line := range lines {
		drawText(screen, line, face, cfg.HUD.Margin, y, cfg.BrightGreen, 1)
		y += cfg.HUD.LineHeight
	}

	drawSpaceMinimap(ecs, screen)
}

func sleepLabel(b *physics.Body) string {
	switch b.SleepState() {
	case physics.Sleeping:
		return "sleeping"
	case physics.Sleepy:
		return "sleepy"
	}
	return "awake"
}

// drawSpaceMinimap outlines every object in the field space, scaled down
// into the top-right corner.
func drawSpaceMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	const scale = 0.4
	w, _ := cfg.Field.SpaceSize()
	originX := float64(screen.Bounds().Dx()) - cfg.HUD.Margin - float64(w)*scale
	originY := cfg.HUD.Margin + 3*cfg.HUD.LineHeight

	for _, obj := range space.Objects() {
		c := cfg.DarkBlue
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.Gray
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.LightBlue
		} else if obj.HasTags(tags.ResolvCan) {
			c = cfg.Yellow
		}
		x := float32(originX + obj.X*scale)
		y := float32(originY + obj.Y*scale)
		vector.FillRect(screen, x, y, float32(obj.W*scale), float32(obj.H*scale), c, false)
	}
}
